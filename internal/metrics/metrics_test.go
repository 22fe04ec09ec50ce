package metrics

import (
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewWithRegistry(reg, nil), reg
}

func TestMetricsInitialization(t *testing.T) {
	m, _ := newTestMetrics(t)

	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.DBQueryDuration)
	assert.NotNil(t, m.DBQueryErrors)
	assert.NotNil(t, m.ExternalAPIRequestsTotal)
	assert.NotNil(t, m.BoardsTotal)
	assert.NotNil(t, m.ActiveInvitationsTotal)
	assert.NotNil(t, m.InvitationRedeemedTotal)
	assert.NotNil(t, m.PermissionChecksTotal)
}

// 모든 메트릭 이름은 네임스페이스 접두사와 snake_case를 사용해야 한다
func TestMetricNames_SnakeCaseWithNamespace(t *testing.T) {
	m, reg := newTestMetrics(t)

	// Vec metrics only show up once a label set has been observed
	m.RecordHTTPRequest("GET", "/api/kanban/boards", 200, time.Millisecond)
	m.RecordDBQuery("query", "boards", time.Millisecond, errors.New("boom"))
	m.RecordExternalAPICall("/api/auth/validate", "GET", 500, time.Millisecond, nil)
	m.IncrementInvitationRedeemed(RedeemResultSuccess)
	m.RecordPermissionCheck("edit", true)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	snake := regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	for _, f := range families {
		name := f.GetName()
		assert.True(t, strings.HasPrefix(name, namespace+"_"), "missing namespace: %s", name)
		assert.True(t, snake.MatchString(name), "not snake_case: %s", name)
		assert.NotEmpty(t, f.GetHelp(), "missing help: %s", name)
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		category string
	}{
		{"2xx 응답", 201, "2xx"},
		{"3xx 응답", 304, "3xx"},
		{"4xx 응답", 404, "4xx"},
		{"5xx 응답", 503, "5xx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMetrics(t)
			m.RecordHTTPRequest("POST", "/api/kanban/boards", tt.status, 10*time.Millisecond)

			got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/kanban/boards", tt.category))
			assert.Equal(t, 1.0, got)
		})
	}
}

func TestCategorizeStatus_Unknown(t *testing.T) {
	assert.Equal(t, "unknown", categorizeStatus(101))
	assert.Equal(t, "unknown", categorizeStatus(0))
}

func TestShouldSkipEndpoint(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/metrics", true},
		{"/health", true},
		{"/ready", true},
		{"/api/kanban/health", true},
		{"/swagger/index.html", true},
		{"/api/kanban/boards", false},
		{"/api/kanban/invitations/:code/accept", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldSkipEndpoint(tt.path))
		})
	}
}

func TestRecordDBQuery(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordDBQuery("QUERY", "boards", 5*time.Millisecond, nil)
	m.RecordDBQuery("create", "board_members", 5*time.Millisecond, errors.New("duplicate key"))
	m.RecordDBQuery("delete", "", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryErrors.WithLabelValues("create", "board_members")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("create", "board_members")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("delete", "unknown")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("query", "boards")))
}

func TestUpdateDBStats(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.UpdateDBStats(sql.DBStats{
		MaxOpenConnections: 25,
		OpenConnections:    7,
		InUse:              3,
		Idle:               4,
		WaitCount:          9,
		WaitDuration:       2 * time.Second,
	})

	assert.Equal(t, 7.0, testutil.ToFloat64(m.DBConnectionsOpen))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DBConnectionsInUse))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.DBConnectionsIdle))
	assert.Equal(t, 25.0, testutil.ToFloat64(m.DBConnectionsMax))
	assert.Equal(t, 9.0, testutil.ToFloat64(m.DBConnectionWaitTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DBConnectionWaitDuration))

	// repeated snapshots must not accumulate
	m.UpdateDBStats(sql.DBStats{WaitCount: 9})
	assert.Equal(t, 9.0, testutil.ToFloat64(m.DBConnectionWaitTotal))
}

func TestUpdateDBStats_IgnoresOtherTypes(t *testing.T) {
	m, _ := newTestMetrics(t)

	assert.NotPanics(t, func() { m.UpdateDBStats("not stats") })
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DBConnectionsOpen))
}

func TestRecordExternalAPICall(t *testing.T) {
	m, _ := newTestMetrics(t)
	id := "123e4567-e89b-12d3-a456-426614174000"

	m.RecordExternalAPICall("kanban/exports/"+id, "PUT", 200, time.Millisecond, nil)
	m.RecordExternalAPICall("/api/auth/validate", "GET", 401, time.Millisecond, nil)
	m.RecordExternalAPICall("/api/auth/validate", "GET", 0, time.Millisecond, errors.New("dial tcp: connection refused"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExternalAPIRequestsTotal.WithLabelValues("kanban/exports/{id}", "PUT", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExternalAPIErrors.WithLabelValues("/api/auth/validate", "unauthorized")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExternalAPIErrors.WithLabelValues("/api/auth/validate", "connection_refused")))
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
		want   string
	}{
		{"400", 400, nil, "bad_request"},
		{"429", 429, nil, "too_many_requests"},
		{"418", 418, nil, "client_error"},
		{"503", 503, nil, "service_unavailable"},
		{"599", 599, nil, "server_error"},
		{"DNS 실패", 0, errors.New("dial tcp: lookup auth: no such host"), "dns_error"},
		{"타임아웃", 0, errors.New("context deadline exceeded"), "timeout"},
		{"연결 재설정", 0, errors.New("unexpected EOF"), "connection_reset"},
		{"인증서 오류", 0, errors.New("x509: certificate signed by unknown authority"), "tls_error"},
		{"기타 네트워크 오류", 0, errors.New("broken pipe"), "network_error"},
		{"에러 없음", 0, nil, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getErrorType(tt.status, tt.err))
		})
	}
}

func TestBusinessMetrics(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.IncrementBoardCreated()
	m.IncrementBoardCreated()
	m.IncrementInvitationCreated()
	m.IncrementInvitationRedeemed(RedeemResultSuccess)
	m.IncrementInvitationRedeemed(RedeemResultExpired)
	m.IncrementInvitationRedeemed(RedeemResultExpired)
	m.RecordPermissionCheck("owner", false)
	m.IncrementBoardExports()
	m.SetBoardsTotal(4)
	m.SetListsTotal(12)
	m.SetCardsTotal(40)
	m.SetActiveInvitationsTotal(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BoardCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InvitationCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InvitationRedeemedTotal.WithLabelValues(RedeemResultSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.InvitationRedeemedTotal.WithLabelValues(RedeemResultExpired)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PermissionChecksTotal.WithLabelValues("owner", "denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BoardExportsTotal))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.BoardsTotal))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.ListsTotal))
	assert.Equal(t, 40.0, testutil.ToFloat64(m.CardsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ActiveInvitationsTotal))
}

// 메트릭 기록 중 패닉이 발생해도 호출자에게 전파되지 않아야 한다
func TestSafeExecute_RecoversPanic(t *testing.T) {
	m, _ := newTestMetrics(t)
	m.InvitationRedeemedTotal = nil

	assert.NotPanics(t, func() {
		m.IncrementInvitationRedeemed(RedeemResultSuccess)
	})
}

func TestNilMetrics_IsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncrementBoardCreated()
		m.RecordPermissionCheck("edit", true)
		m.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	})
}
