// Package httpapi exposes the HTTP/JSON boundary. Paths, status codes and
// message strings follow the deployed API; every error is mapped to an HTTP
// status plus a {"message"} body; nothing propagates as an unhandled fault.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mygymbro/mygymbro/internal/logging"
	"github.com/mygymbro/mygymbro/internal/server/services"
)

type Server struct {
	addr          string
	logger        logging.Logger
	users         *services.UserService
	catalog       *services.CatalogService
	workouts      *services.WorkoutService
	pics          *services.PicService
	tokenValidity time.Duration
}

func NewServer(addr string, l logging.Logger,
	us *services.UserService, cs *services.CatalogService,
	ws *services.WorkoutService, ps *services.PicService,
	tokenValidity time.Duration) *Server {

	return &Server{
		addr:          addr,
		logger:        l.With("module", "httpapi"),
		users:         us,
		catalog:       cs,
		workouts:      ws,
		pics:          ps,
		tokenValidity: tokenValidity,
	}
}

// Routes builds the router. Account creation, login and the profile reads
// stay public; everything touching catalog or workout state sits behind the
// session cookie.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Post("/signup", s.handleSignup)
	r.Post("/login", s.handleLogin)
	r.Get("/clear_cookies", s.handleClearCookies)
	r.Get("/verifyjwt", s.handleVerifyJWT)
	r.Get("/get_user_data", s.handleGetUserData)
	r.Put("/edit_profile", s.handleEditProfile)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Put("/change_password", s.handleChangePassword)

		r.Get("/exercises_list", s.handleExercisesList)
		r.Put("/create_exercise", s.handleCreateExercise)
		r.Delete("/delete_exercise", s.handleDeleteExercise)
		r.Get("/get_exercise", s.handleGetExercise)

		r.Get("/meals_list", s.handleMealsList)
		r.Put("/create_meal", s.handleCreateMeal)
		r.Delete("/delete_meal", s.handleDeleteMeal)

		r.Patch("/finish_workout", s.handleFinishWorkout)
		r.Patch("/save_current_workout", s.handleSaveCurrentWorkout)
		r.Patch("/clear_current_workout", s.handleClearCurrentWorkout)
		r.Get("/get_workout_sessions", s.handleGetWorkoutSessions)
		r.Get("/get_userexercise_info", s.handleGetUserExerciseInfo)

		r.Patch("/log_meal_day", s.handleLogMealDay)
		r.Get("/get_meal_days", s.handleGetMealDays)

		r.Put("/progress_pic_upload", s.handleProgressPicUpload)
		r.Get("/progress_pics", s.handleProgressPics)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
