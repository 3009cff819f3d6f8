package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/hevystats/internal/bodyweight"
	"github.com/2beens/hevystats/internal/hevy"
	"github.com/2beens/hevystats/internal/telemetry/metrics"
	"github.com/2beens/hevystats/internal/telemetry/tracing"
	"github.com/2beens/hevystats/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// statsCacheExpireSeconds caps the cache entry age; entries are
// dropped anyway on every dataset reload
const statsCacheExpireSeconds = 60 * 60

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test

type statsRepo interface {
	ListAll(ctx context.Context, params hevy.SetParams) ([]hevy.Set, error)
	UnknownExercises(ctx context.Context) ([]string, error)
	Routines(ctx context.Context) ([]string, error)
	Years(ctx context.Context) ([]int, error)
	BodyweightEntries(ctx context.Context) ([]bodyweight.Entry, error)
	Phases(ctx context.Context) ([]bodyweight.Phase, error)
	Load(ctx context.Context) error
	SetsCount() int
	LoadedAt() time.Time
}

type ReloadResponse struct {
	Sets     int       `json:"sets"`
	LoadedAt time.Time `json:"loadedAt"`
}

type Handler struct {
	repo           statsRepo
	analyzer       *Analyzer
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func NewHandler(
	repo statsRepo,
	analyzer *Analyzer,
	cacheSizeMb int,
	metricsManager *metrics.Manager,
) *Handler {
	megabyte := 1024 * 1024
	if cacheSizeMb <= 0 {
		cacheSizeMb = 10
	}
	return &Handler{
		repo:           repo,
		analyzer:       analyzer,
		cache:          freecache.NewCache(cacheSizeMb * megabyte),
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/overview", handler.HandleOverview).Methods("GET", "OPTIONS").Name("overview")
	router.HandleFunc("/api/volume/monthly", handler.HandleMonthlyVolume).Methods("GET", "OPTIONS").Name("monthly-volume")
	router.HandleFunc("/api/distribution", handler.HandleDistribution).Methods("GET", "OPTIONS").Name("distribution")
	router.HandleFunc("/api/balance", handler.HandleBalance).Methods("GET", "OPTIONS").Name("balance")
	router.HandleFunc("/api/heatmap", handler.HandleHeatmap).Methods("GET", "OPTIONS").Name("heatmap")
	router.HandleFunc("/api/streaks", handler.HandleStreaks).Methods("GET", "OPTIONS").Name("streaks")
	router.HandleFunc("/api/exercises", handler.HandleExercises).Methods("GET", "OPTIONS").Name("exercises")
	router.HandleFunc("/api/exercises/progression", handler.HandleProgression).Methods("GET", "OPTIONS").Name("progression")
	router.HandleFunc("/api/routines", handler.HandleRoutines).Methods("GET", "OPTIONS").Name("routines")
	router.HandleFunc("/api/years", handler.HandleYears).Methods("GET", "OPTIONS").Name("years")
	router.HandleFunc("/api/bodyweight", handler.HandleBodyweight).Methods("GET", "OPTIONS").Name("bodyweight")
	router.HandleFunc("/api/phases", handler.HandlePhases).Methods("GET", "OPTIONS").Name("phases")
	router.HandleFunc("/api/reload", handler.HandleReload).Methods("POST", "OPTIONS").Name("reload")
}

// setParams reads the shared filter query params.
func setParams(r *http.Request) hevy.SetParams {
	query := r.URL.Query()
	params := hevy.SetParams{
		Routine:     query.Get("routine"),
		MajorGroup:  query.Get("group"),
		MuscleGroup: query.Get("muscleGroup"),
	}
	if yearStr := query.Get("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			params.Year = year
		} else {
			log.Tracef("stats handler: ignoring invalid year param: %s", yearStr)
		}
	}
	return params
}

// respondCached serves the JSON result of compute, going through the
// response cache keyed by the full request URI.
func (handler *Handler) respondCached(
	w http.ResponseWriter,
	r *http.Request,
	compute func(ctx context.Context) (interface{}, error),
) {
	cacheKey := []byte(r.URL.RequestURI())
	if cachedBytes, err := handler.cache.Get(cacheKey); err == nil {
		handler.metricsManager.CounterCacheHits.Inc()
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cachedBytes)
		return
	}
	handler.metricsManager.CounterCacheMisses.Inc()

	result, err := compute(r.Context())
	if err != nil {
		log.Errorf("stats handler %s: %s", r.URL.Path, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("stats handler %s, marshal response: %s", r.URL.Path, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, resultJson, statsCacheExpireSeconds); err != nil {
		log.Errorf("stats handler %s, set response cache: %s", r.URL.Path, err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resultJson)
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	handler.respondCached(w, r, func(ctx context.Context) (interface{}, error) {
		return handler.analyzer.Overview(ctx, setParams(r))
	})
}

func (handler *Handler) HandleMonthlyVolume(w http.ResponseWriter, r *http.Request) {
	handler.respondCached(w, r, func(ctx context.Context) (interface{}, error) {
		return handler.analyzer.MonthlyVolume(ctx, setParams(r), r.URL.Query().Get("metric"))
	})
}

func (handler *Handler) HandleDistribution(w http.ResponseWriter, r *http.Request) {
	handler.respondCached(w, r, func(ctx context.Context) (interface{}, error) {
		return handler.analyzer.Distribution(ctx, setParams(r))
	})
}

func (handler *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	handler.respondCached(w, r, func(ctx context.Context) (interface{}, error) {
		return handler.analyzer.Balance(ctx, setParams(r))
	})
}

func (handler *Handler) HandleHeatmap(w http.ResponseWriter, r *http.Request) {
	handler.respondCached(w, r, func(ctx context.Context) (interface{}, error) {
		return handler.analyzer.Heatmap(ctx, setParams(r))
	})
}

func (handler *Handler) HandleStreaks(w http.ResponseWriter, r *http.Request) {
	// streaks depend on the current time, keep them out of the cache
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.streaks")
	defer span.End()

	streaks, err := handler.analyzer.Streaks(ctx, setParams(r), time.Now())
	if err != nil {
		log.Errorf("stats handler %s: %s", r.URL.Path, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	streaksJson, err := json.Marshal(streaks)
	if err != nil {
		log.Errorf("stats handler %s, marshal response: %s", r.URL.Path, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, streaksJson)
}

func (handler *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	handler.respondCached(w, r, func(ctx context.Context) (interface{}, error) {
		return handler.analyzer.EligibleExercises(ctx, setParams(r))
	})
}

func (handler *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		http.Error(w, "error, exercise param empty", http.StatusBadRequest)
		return
	}
	handler.respondCached(w, r, func(ctx context.Context) (interface{}, error) {
		return handler.analyzer.ExerciseProgression(ctx, setParams(r), exercise)
	})
}

func (handler *Handler) HandleRoutines(w http.ResponseWriter, r *http.Request) {
	handler.respondCached(w, r, func(ctx context.Context) (interface{}, error) {
		return handler.repo.Routines(ctx)
	})
}

func (handler *Handler) HandleYears(w http.ResponseWriter, r *http.Request) {
	handler.respondCached(w, r, func(ctx context.Context) (interface{}, error) {
		return handler.repo.Years(ctx)
	})
}

func (handler *Handler) HandleBodyweight(w http.ResponseWriter, r *http.Request) {
	handler.respondCached(w, r, func(ctx context.Context) (interface{}, error) {
		return handler.repo.BodyweightEntries(ctx)
	})
}

func (handler *Handler) HandlePhases(w http.ResponseWriter, r *http.Request) {
	handler.respondCached(w, r, func(ctx context.Context) (interface{}, error) {
		return handler.repo.Phases(ctx)
	})
}

func (handler *Handler) HandleReload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.reload")
	defer span.End()

	startedAt := time.Now()
	if err := handler.repo.Load(ctx); err != nil {
		log.Errorf("dataset reload failed: %s", err)
		span.RecordError(err)
		http.Error(w, "reload failed", http.StatusInternalServerError)
		return
	}
	setsCount := handler.repo.SetsCount()
	handler.metricsManager.HistDatasetLoadDuration.Observe(time.Since(startedAt).Seconds())
	handler.metricsManager.CounterDatasetReloads.Inc()
	handler.metricsManager.GaugeLoadedSets.Set(float64(setsCount))

	handler.cache.Clear()
	log.Infof("dataset reloaded: %d sets, stats cache cleared", setsCount)

	reloadJson, err := json.Marshal(ReloadResponse{
		Sets:     setsCount,
		LoadedAt: handler.repo.LoadedAt(),
	})
	if err != nil {
		log.Errorf("stats handler reload, marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, reloadJson)
}
