package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mygymbro/mygymbro/internal/common"
	"github.com/mygymbro/mygymbro/internal/server/models"
)

type finishWorkoutRequest struct {
	Workout  models.WorkoutSession `json:"workout"`
	Duration int                   `json:"duration"`
}

func (s *Server) handleFinishWorkout(w http.ResponseWriter, r *http.Request) {
	var req finishWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	err := s.workouts.CompleteSession(r.Context(), requestUserID(r), &req.Workout, req.Duration)
	if err != nil {
		s.logger.Error(r.Context(), "finish workout failed", "error", err.Error())

		var ve *common.ValidationError
		if errors.As(err, &ve) {
			writeMessage(w, http.StatusInternalServerError, ve.Error())
			return
		}
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	writeMessage(w, http.StatusOK, "Workout session saved successfully")
}

type saveWorkoutRequest struct {
	Workout models.WorkoutSession `json:"workout"`
}

func (s *Server) handleSaveCurrentWorkout(w http.ResponseWriter, r *http.Request) {
	var req saveWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	if err := s.workouts.SaveCurrent(r.Context(), requestUserID(r), &req.Workout); err != nil {
		s.logger.Error(r.Context(), "save current workout failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	writeMessage(w, http.StatusOK, "Current workout saved successfully")
}

func (s *Server) handleClearCurrentWorkout(w http.ResponseWriter, r *http.Request) {
	if err := s.workouts.ClearCurrent(r.Context(), requestUserID(r)); err != nil {
		s.logger.Error(r.Context(), "clear current workout failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	writeMessage(w, http.StatusOK, "Current workout cleared successfully")
}

func (s *Server) handleGetWorkoutSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.workouts.Sessions(r.Context(), requestUserID(r))
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleGetUserExerciseInfo(w http.ResponseWriter, r *http.Request) {
	stat, err := s.workouts.History(r.Context(), requestUserID(r), r.URL.Query().Get("id"))
	if err != nil {
		// never having done the exercise is not a failure
		if errors.Is(err, common.ErrNotFound) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}
	writeJSON(w, http.StatusOK, stat)
}

func (s *Server) handleLogMealDay(w http.ResponseWriter, r *http.Request) {
	var d models.MealDay
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	if err := s.workouts.LogMealDay(r.Context(), requestUserID(r), d); err != nil {
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	writeMessage(w, http.StatusOK, "Meal day logged successfully")
}

func (s *Server) handleGetMealDays(w http.ResponseWriter, r *http.Request) {
	days, err := s.workouts.MealDays(r.Context(), requestUserID(r))
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}
	writeJSON(w, http.StatusOK, days)
}
