package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// PermissionDecision is the outcome of a permission check. When Granted is
// false, Code is the error code to report and Reason a human-readable message.
type PermissionDecision struct {
	Granted bool   `json:"granted"`
	Reason  string `json:"reason,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Err returns nil for a granted decision and an AppError carrying Code otherwise
func (d PermissionDecision) Err() error {
	if d.Granted {
		return nil
	}
	return response.NewAppError(d.Code, d.Reason, "")
}

func granted() PermissionDecision {
	return PermissionDecision{Granted: true}
}

func denied(code, reason string) PermissionDecision {
	return PermissionDecision{Code: code, Reason: reason}
}

// authorize folds a resolver result into a single error
func authorize(d PermissionDecision, err error) error {
	if err != nil {
		return err
	}
	return d.Err()
}

// PermissionService decides what a caller may do on a board. Every call
// reads current store state; nothing is cached. The returned error is
// non-nil only when the store itself failed.
type PermissionService interface {
	// ResolveEditPermission grants the board owner and members with role editor or owner
	ResolveEditPermission(ctx context.Context, caller Caller, boardID uuid.UUID) (PermissionDecision, error)
	// ResolveOwnerPermission grants only the board's literal owner. A membership
	// row with role owner does not qualify.
	ResolveOwnerPermission(ctx context.Context, caller Caller, boardID uuid.UUID) (PermissionDecision, error)
	// ResolveReadPermission grants anyone on a public board, and the owner or any member otherwise
	ResolveReadPermission(ctx context.Context, caller Caller, boardID uuid.UUID) (PermissionDecision, error)
	// ResolveMemberAccess grants the owner or any member, regardless of visibility
	ResolveMemberAccess(ctx context.Context, caller Caller, boardID uuid.UUID) (PermissionDecision, error)
}

type permissionServiceImpl struct {
	boardRepo  repository.BoardRepository
	memberRepo repository.MemberRepository
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewPermissionService creates a new instance of PermissionService
func NewPermissionService(
	boardRepo repository.BoardRepository,
	memberRepo repository.MemberRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) PermissionService {
	return &permissionServiceImpl{
		boardRepo:  boardRepo,
		memberRepo: memberRepo,
		metrics:    m,
		logger:     logger,
	}
}

func (s *permissionServiceImpl) ResolveEditPermission(ctx context.Context, caller Caller, boardID uuid.UUID) (PermissionDecision, error) {
	d, err := s.resolve(ctx, caller, boardID, false, func(board *domain.Board, member *domain.BoardMember) PermissionDecision {
		if board.IsOwnedBy(caller.UserID) {
			return granted()
		}
		if member != nil && member.Role.CanEdit() {
			return granted()
		}
		return denied(response.ErrCodeForbidden, "You do not have permission to edit this board")
	})
	s.record("edit", d, err)
	return d, err
}

func (s *permissionServiceImpl) ResolveOwnerPermission(ctx context.Context, caller Caller, boardID uuid.UUID) (PermissionDecision, error) {
	if !caller.IsAuthenticated() {
		d := denied(response.ErrCodeUnauthorized, "Authentication required")
		s.record("owner", d, nil)
		return d, nil
	}

	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if isNotFound(err) {
			d := denied(response.ErrCodeNotFound, "Board not found")
			s.record("owner", d, nil)
			return d, nil
		}
		s.logger.Error("Failed to load board for owner check", zap.String("board_id", boardID.String()), zap.Error(err))
		return PermissionDecision{}, response.NewStoreError("Failed to load board", err)
	}

	d := granted()
	if !board.IsOwnedBy(caller.UserID) {
		d = denied(response.ErrCodeForbidden, "Only the board owner can perform this action")
	}
	s.record("owner", d, nil)
	return d, nil
}

func (s *permissionServiceImpl) ResolveReadPermission(ctx context.Context, caller Caller, boardID uuid.UUID) (PermissionDecision, error) {
	d, err := s.resolve(ctx, caller, boardID, true, func(board *domain.Board, member *domain.BoardMember) PermissionDecision {
		if board.Visibility == domain.VisibilityPublic || board.IsOwnedBy(caller.UserID) || member != nil {
			return granted()
		}
		return denied(response.ErrCodeForbidden, "You do not have access to this board")
	})
	s.record("read", d, err)
	return d, err
}

func (s *permissionServiceImpl) ResolveMemberAccess(ctx context.Context, caller Caller, boardID uuid.UUID) (PermissionDecision, error) {
	d, err := s.resolve(ctx, caller, boardID, false, func(board *domain.Board, member *domain.BoardMember) PermissionDecision {
		if board.IsOwnedBy(caller.UserID) || member != nil {
			return granted()
		}
		return denied(response.ErrCodeForbidden, "Only board members can view the member list")
	})
	s.record("member", d, err)
	return d, err
}

// resolve loads the board and the caller's first membership row, then applies rule.
// With allowAnonymous the rule also runs for unauthenticated callers, with no membership.
func (s *permissionServiceImpl) resolve(
	ctx context.Context,
	caller Caller,
	boardID uuid.UUID,
	allowAnonymous bool,
	rule func(*domain.Board, *domain.BoardMember) PermissionDecision,
) (PermissionDecision, error) {
	if !caller.IsAuthenticated() && !allowAnonymous {
		return denied(response.ErrCodeUnauthorized, "Authentication required"), nil
	}

	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if isNotFound(err) {
			return denied(response.ErrCodeNotFound, "Board not found"), nil
		}
		s.logger.Error("Failed to load board for permission check", zap.String("board_id", boardID.String()), zap.Error(err))
		return PermissionDecision{}, response.NewStoreError("Failed to load board", err)
	}

	if !caller.IsAuthenticated() {
		if d := rule(board, nil); d.Granted {
			return d, nil
		}
		return denied(response.ErrCodeUnauthorized, "Authentication required"), nil
	}

	if board.IsOwnedBy(caller.UserID) {
		return rule(board, nil), nil
	}

	member, err := s.memberRepo.FindByBoardAndUser(ctx, boardID, caller.UserID)
	if err != nil {
		if !isNotFound(err) {
			s.logger.Error("Failed to load membership", zap.String("board_id", boardID.String()), zap.Error(err))
			return PermissionDecision{}, response.NewStoreError("Failed to load membership", err)
		}
		member = nil
	}
	return rule(board, member), nil
}

func (s *permissionServiceImpl) record(kind string, d PermissionDecision, err error) {
	if err != nil {
		return
	}
	s.metrics.RecordPermissionCheck(kind, d.Granted)
}
