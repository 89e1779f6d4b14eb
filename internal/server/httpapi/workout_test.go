package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func benchSession(exerciseID string) map[string]any {
	return map[string]any{
		"name": "Push day",
		"date": "2024-03-01",
		"entries": []map[string]any{{
			"id":     exerciseID,
			"sets":   []int{8, 6, 4},
			"weight": []float64{100, 110, 120},
			"date":   []string{"2024-03-01", "2024-03-01", "2024-03-01"},
		}},
	}
}

func TestFinishWorkout_RecordsHistoryAndStats(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	_, cookie := api.signup(t, "lifter", "lifter@gym.com", "plaintext6")

	rec := api.do(t, http.MethodPatch, "/finish_workout", map[string]any{
		"workout": benchSession("ex1"), "duration": 55,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Workout session saved successfully", decodeBody(t, rec)["message"])

	rec = api.do(t, http.MethodGet, "/get_workout_sessions", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	sessions := decodeList(t, rec)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Push day", sessions[0]["name"])
	assert.Equal(t, float64(55), sessions[0]["duration"])

	rec = api.do(t, http.MethodGet, "/get_userexercise_info?id=ex1", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	stat := decodeBody(t, rec)
	assert.Equal(t, float64(120), stat["personalRecord"])
	assert.Equal(t, "2024-03-01", stat["personalRecordDate"])
	assert.Len(t, stat["pastSetWeight"], 3)
	assert.Len(t, stat["pastSetReps"], 3)
	assert.Len(t, stat["pastDates"], 3)
}

func TestGetUserExerciseInfo_NoHistory(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	_, cookie := api.signup(t, "lifter", "lifter@gym.com", "plaintext6")

	rec := api.do(t, http.MethodGet, "/get_userexercise_info?id=never-logged", nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestFinishWorkout_MisshapedEntryRejected(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	_, cookie := api.signup(t, "lifter", "lifter@gym.com", "plaintext6")

	rec := api.do(t, http.MethodPatch, "/finish_workout", map[string]any{
		"workout": map[string]any{
			"name": "Push day",
			"date": "2024-03-01",
			"entries": []map[string]any{{
				"id":     "ex1",
				"sets":   []int{8, 6},
				"weight": []float64{100, 110, 120},
				"date":   []string{"2024-03-01"},
			}},
		},
		"duration": 55,
	}, cookie)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Sets, weights and dates must have the same length. ", decodeBody(t, rec)["message"])

	// nothing was committed
	rec = api.do(t, http.MethodGet, "/get_workout_sessions", nil, cookie)
	assert.Empty(t, decodeList(t, rec))

	rec = api.do(t, http.MethodGet, "/get_userexercise_info?id=ex1", nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCurrentWorkoutSnapshot(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	id, cookie := api.signup(t, "lifter", "lifter@gym.com", "plaintext6")

	rec := api.do(t, http.MethodPatch, "/save_current_workout", map[string]any{
		"workout": benchSession("ex1"),
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Current workout saved successfully", decodeBody(t, rec)["message"])

	rec = api.do(t, http.MethodGet, "/get_user_data?id="+id, nil, nil)
	body := decodeBody(t, rec)
	require.NotNil(t, body["currentWorkout"])

	// the snapshot never reaches the completed history
	rec = api.do(t, http.MethodGet, "/get_workout_sessions", nil, cookie)
	assert.Empty(t, decodeList(t, rec))

	rec = api.do(t, http.MethodPatch, "/clear_current_workout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Current workout cleared successfully", decodeBody(t, rec)["message"])

	rec = api.do(t, http.MethodGet, "/get_user_data?id="+id, nil, nil)
	assert.Nil(t, decodeBody(t, rec)["currentWorkout"])

	rec = api.do(t, http.MethodGet, "/get_workout_sessions", nil, cookie)
	assert.Empty(t, decodeList(t, rec))
}

func TestFinishWorkout_ClearsCurrentSnapshot(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	id, cookie := api.signup(t, "lifter", "lifter@gym.com", "plaintext6")

	rec := api.do(t, http.MethodPatch, "/save_current_workout", map[string]any{
		"workout": benchSession("ex1"),
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodPatch, "/finish_workout", map[string]any{
		"workout": benchSession("ex1"), "duration": 40,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodGet, "/get_user_data?id="+id, nil, nil)
	assert.Nil(t, decodeBody(t, rec)["currentWorkout"])

	rec = api.do(t, http.MethodGet, "/get_workout_sessions", nil, cookie)
	assert.Len(t, decodeList(t, rec), 1)
}

func TestMealDays(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	_, cookie := api.signup(t, "lifter", "lifter@gym.com", "plaintext6")

	rec := api.do(t, http.MethodGet, "/get_meal_days", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeList(t, rec))

	rec = api.do(t, http.MethodPatch, "/log_meal_day", map[string]any{
		"date":          "2024-03-01",
		"meals":         []string{"Oatmeal", "Chicken bowl"},
		"totalCalories": 1450,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Meal day logged successfully", decodeBody(t, rec)["message"])

	rec = api.do(t, http.MethodGet, "/get_meal_days", nil, cookie)
	days := decodeList(t, rec)
	require.Len(t, days, 1)
	assert.Equal(t, "2024-03-01", days[0]["date"])
	assert.Equal(t, float64(1450), days[0]["totalCalories"])
}
