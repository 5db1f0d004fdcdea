package health_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sprintertech/across-dataworker/dataworker"
	"github.com/sprintertech/across-dataworker/health"
	"github.com/stretchr/testify/suite"
)

type latestBundle struct {
	bundle *dataworker.Bundle
}

func (l latestBundle) Latest() (*dataworker.Bundle, error) {
	if l.bundle == nil {
		return nil, fmt.Errorf("no bundle")
	}
	return l.bundle, nil
}

type HealthTestSuite struct {
	suite.Suite
}

func TestRunHealthTestSuite(t *testing.T) {
	suite.Run(t, new(HealthTestSuite))
}

func (s *HealthTestSuite) Test_NoBundle() {
	recorder := httptest.NewRecorder()

	health.Handler(latestBundle{})(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	s.Equal(http.StatusServiceUnavailable, recorder.Code)
}

func (s *HealthTestSuite) Test_BundleBuilt() {
	recorder := httptest.NewRecorder()

	health.Handler(latestBundle{bundle: &dataworker.Bundle{}})(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("ok", recorder.Body.String())
}
