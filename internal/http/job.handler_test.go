package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wongco/jobly/internal/entity"
	"github.com/wongco/jobly/internal/repository"
)

func TestGetJobsParsesFilters(t *testing.T) {
	env := newTestEnv(t)
	env.jobs.On("List", mock.Anything, map[string]interface{}{
		"search":     "roni",
		"min_salary": 50000.0,
		"min_equity": 0.5,
	}).Return([]entity.Job{{ID: 8, Title: "CEO", CompanyHandle: "roni"}}, nil).Once()

	recorder := env.request(t, http.MethodGet,
		"/jobs?search=roni&min_salary=50000&min_equity=0.5&_token="+tokenFor(t, "joe"), nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	env.jobs.AssertExpectations(t)
}

func TestCreateJobRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("IsAdmin", mock.Anything, "joe").Return(false, nil).Once()

	recorder := env.request(t, http.MethodPost, "/jobs", map[string]interface{}{
		"_token":         tokenFor(t, "joe"),
		"title":          "CEO",
		"salary":         5000000,
		"company_handle": "roni",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	env.jobs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateJobUnknownCompany(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("IsAdmin", mock.Anything, "harry").Return(true, nil).Once()
	env.jobs.On("Add", mock.Anything, mock.Anything).Return(repository.ErrCompanyNotFound).Once()

	recorder := env.request(t, http.MethodPost, "/jobs", map[string]interface{}{
		"_token":         tokenFor(t, "harry"),
		"title":          "CEO",
		"salary":         5000000,
		"company_handle": "ghost",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Company not found.", errorMessage(t, recorder))
}

func TestCreateJobSuccess(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("IsAdmin", mock.Anything, "harry").Return(true, nil).Once()
	env.jobs.On("Add", mock.Anything, mock.MatchedBy(func(job *entity.Job) bool {
		return job.Title == "CEO" && job.Equity == 0.25 && job.CompanyHandle == "roni"
	})).Return(nil).Once()

	recorder := env.request(t, http.MethodPost, "/jobs", map[string]interface{}{
		"_token":         tokenFor(t, "harry"),
		"title":          "CEO",
		"salary":         5000000,
		"equity":         0.25,
		"company_handle": "roni",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestCreateJobEquityOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("IsAdmin", mock.Anything, "harry").Return(true, nil).Once()

	recorder := env.request(t, http.MethodPost, "/jobs", map[string]interface{}{
		"_token":         tokenFor(t, "harry"),
		"title":          "CEO",
		"salary":         5000000,
		"equity":         1.5,
		"company_handle": "roni",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	env.jobs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestGetJobNonNumericID(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodGet, "/jobs/abc?_token="+tokenFor(t, "joe"), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Equal(t, "Please provide a valid job ID.", errorMessage(t, recorder))
	env.jobs.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestGetJobNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.jobs.On("Get", mock.Anything, int64(99)).Return(nil, repository.ErrJobNotFound).Once()

	recorder := env.request(t, http.MethodGet, "/jobs/99?_token="+tokenFor(t, "joe"), nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Job not found.", errorMessage(t, recorder))
}

func TestUpdateJob(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("IsAdmin", mock.Anything, "harry").Return(true, nil).Once()
	env.jobs.On("Patch", mock.Anything, int64(8), map[string]interface{}{
		"salary": float64(6000000),
	}).Return(&entity.Job{ID: 8, Title: "CEO", Salary: 6000000}, nil).Once()

	recorder := env.request(t, http.MethodPatch, "/jobs/8", map[string]interface{}{
		"_token": tokenFor(t, "harry"),
		"salary": 6000000,
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	env.jobs.AssertExpectations(t)
}

func TestDeleteJob(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("IsAdmin", mock.Anything, "harry").Return(true, nil).Once()
	env.jobs.On("Delete", mock.Anything, int64(8)).Return(nil).Once()

	recorder := env.request(t, http.MethodDelete, "/jobs/8?_token="+tokenFor(t, "harry"), nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	payload := decodeBody(t, recorder)
	assert.Equal(t, "Job deleted", payload["message"])
}

func TestApplyToJob(t *testing.T) {
	env := newTestEnv(t)
	env.jobs.On("Get", mock.Anything, int64(8)).Return(&entity.Job{ID: 8, Title: "CEO"}, nil).Once()
	env.applications.On("Apply", mock.Anything, "joe", int64(8), "applied").
		Return(&entity.Application{Username: "joe", JobID: 8, State: "applied"}, nil).Once()

	// Token in the body exercises body restoration in the middleware: the
	// handler must still be able to bind the state field afterwards.
	recorder := env.request(t, http.MethodPost, "/jobs/8/apply", map[string]interface{}{
		"_token": tokenFor(t, "joe"),
		"state":  "applied",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	payload := decodeBody(t, recorder)
	assert.Equal(t, "applied", payload["message"])
	env.applications.AssertExpectations(t)
}

func TestApplyToJobInvalidState(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodPost, "/jobs/8/apply", map[string]interface{}{
		"_token": tokenFor(t, "joe"),
		"state":  "dreaming",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Equal(t, "Invalid state. Check your input.", errorMessage(t, recorder))
	env.applications.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyToMissingJob(t *testing.T) {
	env := newTestEnv(t)
	env.jobs.On("Get", mock.Anything, int64(99)).Return(nil, repository.ErrJobNotFound).Once()

	recorder := env.request(t, http.MethodPost, "/jobs/99/apply", map[string]interface{}{
		"_token": tokenFor(t, "joe"),
		"state":  "interested",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestApplyTwiceConflicts(t *testing.T) {
	env := newTestEnv(t)
	env.jobs.On("Get", mock.Anything, int64(8)).Return(&entity.Job{ID: 8}, nil).Once()
	env.applications.On("Apply", mock.Anything, "joe", int64(8), "applied").
		Return(nil, repository.ErrDuplicateEntry).Once()

	recorder := env.request(t, http.MethodPost, "/jobs/8/apply", map[string]interface{}{
		"_token": tokenFor(t, "joe"),
		"state":  "applied",
	})

	assert.Equal(t, http.StatusConflict, recorder.Code)
}
