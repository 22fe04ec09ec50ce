package metrics

// Redemption outcomes used as the result label of InvitationRedeemedTotal
const (
	RedeemResultSuccess = "success"
	RedeemResultInvalid = "invalid"
	RedeemResultRevoked = "revoked"
	RedeemResultExpired = "expired"
	RedeemResultError   = "error"
)

// IncrementBoardCreated increments board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementInvitationCreated increments invitation creation counter
func (m *Metrics) IncrementInvitationCreated() {
	m.safeExecute("IncrementInvitationCreated", func() {
		m.InvitationCreatedTotal.Inc()
	})
}

// IncrementInvitationRedeemed counts a redemption attempt with its result
func (m *Metrics) IncrementInvitationRedeemed(result string) {
	m.safeExecute("IncrementInvitationRedeemed", func() {
		m.InvitationRedeemedTotal.WithLabelValues(result).Inc()
	})
}

// RecordPermissionCheck counts a permission resolution. kind is "edit", "owner", "read" or "member".
func (m *Metrics) RecordPermissionCheck(kind string, granted bool) {
	m.safeExecute("RecordPermissionCheck", func() {
		result := "denied"
		if granted {
			result = "granted"
		}
		m.PermissionChecksTotal.WithLabelValues(kind, result).Inc()
	})
}

// IncrementBoardExports increments the export counter
func (m *Metrics) IncrementBoardExports() {
	m.safeExecute("IncrementBoardExports", func() {
		m.BoardExportsTotal.Inc()
	})
}

// SetBoardsTotal sets total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetListsTotal sets total lists gauge
func (m *Metrics) SetListsTotal(count int64) {
	m.safeExecute("SetListsTotal", func() {
		m.ListsTotal.Set(float64(count))
	})
}

// SetCardsTotal sets total cards gauge
func (m *Metrics) SetCardsTotal(count int64) {
	m.safeExecute("SetCardsTotal", func() {
		m.CardsTotal.Set(float64(count))
	})
}

// SetActiveInvitationsTotal sets active invitations gauge
func (m *Metrics) SetActiveInvitationsTotal(count int64) {
	m.safeExecute("SetActiveInvitationsTotal", func() {
		m.ActiveInvitationsTotal.Set(float64(count))
	})
}
