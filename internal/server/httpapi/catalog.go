package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mygymbro/mygymbro/internal/common"
	"github.com/mygymbro/mygymbro/internal/server/models"
)

func (s *Server) handleExercisesList(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.Exercises(r.Context(), requestUserID(r))
	if err != nil {
		s.logger.Error(r.Context(), "exercises list failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type createExerciseRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PrimaryMuscle string   `json:"primaryMuscle"`
	OtherMuscles  []string `json:"otherMuscles"`
	Equipment     string   `json:"equipment"`
	IsVisible     bool     `json:"isVisible"`
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var req createExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	// creator comes from the session, never the body
	e := &models.Exercise{
		Name:          req.Name,
		Description:   req.Description,
		PrimaryMuscle: req.PrimaryMuscle,
		OtherMuscles:  req.OtherMuscles,
		Equipment:     req.Equipment,
		IsVisible:     req.IsVisible,
	}

	err := s.catalog.CreateExercise(r.Context(), requestUserID(r), e)
	if err != nil {
		var ve *common.ValidationError
		switch {
		case errors.As(err, &ve):
			writeMessage(w, http.StatusInternalServerError, ve.Error())
		case errors.Is(err, common.ErrDuplicateKey):
			writeMessage(w, http.StatusInternalServerError, "Exercise name already exists")
		default:
			s.logger.Error(r.Context(), "create exercise failed", "error", err.Error())
			writeMessage(w, http.StatusInternalServerError, msgGenericError)
		}
		return
	}

	writeMessage(w, http.StatusOK, "Exercise created successfully")
}

type deleteRequest struct {
	ID string `json:"_id"`
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	err := s.catalog.DeleteExercise(r.Context(), requestUserID(r), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotAuthorized):
			writeMessage(w, http.StatusInternalServerError, "User is not authorized to delete this exercise")
		case errors.Is(err, common.ErrNotFound):
			writeMessage(w, http.StatusInternalServerError, "exercise not found")
		default:
			s.logger.Error(r.Context(), "delete exercise failed", "error", err.Error())
			writeMessage(w, http.StatusInternalServerError, msgGenericError)
		}
		return
	}

	writeMessage(w, http.StatusOK, "Exercise deleted successfully")
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	e, creatorName, err := s.catalog.ExerciseWithCreator(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "exercise not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"_id":           e.ID,
		"name":          e.Name,
		"creator":       e.Creator,
		"creatorName":   creatorName,
		"description":   e.Description,
		"primaryMuscle": e.PrimaryMuscle,
		"otherMuscles":  e.OtherMuscles,
		"equipment":     e.Equipment,
		"isVisible":     e.IsVisible,
	})
}

func (s *Server) handleMealsList(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.Meals(r.Context(), requestUserID(r))
	if err != nil {
		s.logger.Error(r.Context(), "meals list failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type createMealRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	IsVisible   bool    `json:"isVisible"`
}

func (s *Server) handleCreateMeal(w http.ResponseWriter, r *http.Request) {
	var req createMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	m := &models.Meal{
		Name:        req.Name,
		Description: req.Description,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fats:        req.Fats,
		IsVisible:   req.IsVisible,
	}

	err := s.catalog.CreateMeal(r.Context(), requestUserID(r), m)
	if err != nil {
		var ve *common.ValidationError
		switch {
		case errors.As(err, &ve):
			writeMessage(w, http.StatusInternalServerError, ve.Error())
		case errors.Is(err, common.ErrDuplicateKey):
			writeMessage(w, http.StatusInternalServerError, "Meal name already exists")
		default:
			s.logger.Error(r.Context(), "create meal failed", "error", err.Error())
			writeMessage(w, http.StatusInternalServerError, msgGenericError)
		}
		return
	}

	writeMessage(w, http.StatusOK, "Meal created successfully")
}

func (s *Server) handleDeleteMeal(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	err := s.catalog.DeleteMeal(r.Context(), requestUserID(r), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotAuthorized):
			writeMessage(w, http.StatusInternalServerError, "User is not authorized to delete this meal")
		case errors.Is(err, common.ErrNotFound):
			writeMessage(w, http.StatusInternalServerError, "meal not found")
		default:
			s.logger.Error(r.Context(), "delete meal failed", "error", err.Error())
			writeMessage(w, http.StatusInternalServerError, msgGenericError)
		}
		return
	}

	writeMessage(w, http.StatusOK, "Meal deleted successfully")
}
