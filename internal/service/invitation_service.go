package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// maxCodeAttempts bounds retries when a generated code collides with an existing one
const maxCodeAttempts = 3

// Preview status values
const (
	InvitationStatusValid   = "valid"
	InvitationStatusRevoked = "revoked"
	InvitationStatusExpired = "expired"
)

// InvitationService manages invitation codes and the memberships they grant.
//
// An invitation is ACTIVE until revoked; revocation is terminal. Expiry is
// evaluated against the clock at redemption time and is never stored.
type InvitationService interface {
	Create(ctx context.Context, caller Caller, boardID uuid.UUID, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error)
	List(ctx context.Context, caller Caller, boardID uuid.UUID) ([]*dto.InvitationResponse, error)
	Revoke(ctx context.Context, caller Caller, invitationID uuid.UUID) error
	Redeem(ctx context.Context, caller Caller, code string) (*dto.RedeemInvitationResponse, error)
	Preview(ctx context.Context, caller Caller, code string) (*dto.InvitationPreviewResponse, error)
	Members(ctx context.Context, caller Caller, boardID uuid.UUID) ([]*dto.MemberResponse, error)
	RemoveMember(ctx context.Context, caller Caller, boardID, userID uuid.UUID) error
}

type invitationServiceImpl struct {
	invitationRepo repository.InvitationRepository
	memberRepo     repository.MemberRepository
	boardRepo      repository.BoardRepository
	permissions    PermissionService
	generateCode   CodeGenerator
	now            func() time.Time
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewInvitationService creates a new instance of InvitationService.
// now is the clock used for expiry; pass time.Now in production.
func NewInvitationService(
	invitationRepo repository.InvitationRepository,
	memberRepo repository.MemberRepository,
	boardRepo repository.BoardRepository,
	permissions PermissionService,
	generateCode CodeGenerator,
	now func() time.Time,
	m *metrics.Metrics,
	logger *zap.Logger,
) InvitationService {
	return &invitationServiceImpl{
		invitationRepo: invitationRepo,
		memberRepo:     memberRepo,
		boardRepo:      boardRepo,
		permissions:    permissions,
		generateCode:   generateCode,
		now:            now,
		metrics:        m,
		logger:         logger,
	}
}

// Create issues a new code for the board. Only the board owner may do this.
func (s *invitationServiceImpl) Create(ctx context.Context, caller Caller, boardID uuid.UUID, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
	if err := authorize(s.permissions.ResolveOwnerPermission(ctx, caller, boardID)); err != nil {
		return nil, err
	}

	role := domain.RoleEditor
	if req.Role != "" {
		role = domain.Role(req.Role)
	}
	if !role.IsValid() {
		return nil, response.NewValidationError("Invalid role", "role must be one of viewer, editor, owner")
	}

	var expiresAt *time.Time
	if req.ExpiresIn != nil {
		if *req.ExpiresIn <= 0 {
			return nil, response.NewValidationError("Invalid expiry", "expiresIn must be a positive number of hours")
		}
		t := s.now().Add(time.Duration(*req.ExpiresIn) * time.Hour)
		expiresAt = &t
	}

	var invitation *domain.BoardInvitation
	for attempt := 1; ; attempt++ {
		code, err := s.generateCode()
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate invitation code", err.Error())
		}

		invitation = &domain.BoardInvitation{
			BoardID:   boardID,
			Code:      code,
			CreatedBy: caller.UserID,
			ExpiresAt: expiresAt,
			IsActive:  true,
			UsesCount: 0,
			Role:      role,
		}
		err = s.invitationRepo.Create(ctx, invitation)
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < maxCodeAttempts {
			s.logger.Warn("Invitation code collision, regenerating", zap.Int("attempt", attempt))
			continue
		}
		s.logger.Error("Failed to create invitation", zap.String("board_id", boardID.String()), zap.Error(err))
		return nil, response.NewStoreError("Failed to create invitation", err)
	}

	s.metrics.IncrementInvitationCreated()
	s.logger.Info("Invitation created",
		zap.String("board_id", boardID.String()),
		zap.String("invitation_id", invitation.ID.String()),
		zap.String("role", string(role)),
	)
	return toInvitationResponse(invitation), nil
}

// List returns every invitation of the board, active or not, newest first
func (s *invitationServiceImpl) List(ctx context.Context, caller Caller, boardID uuid.UUID) ([]*dto.InvitationResponse, error) {
	if err := authorize(s.permissions.ResolveOwnerPermission(ctx, caller, boardID)); err != nil {
		return nil, err
	}

	invitations, err := s.invitationRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewStoreError("Failed to list invitations", err)
	}

	result := make([]*dto.InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		result = append(result, toInvitationResponse(inv))
	}
	return result, nil
}

// Revoke deactivates an invitation. Revoking an already revoked invitation succeeds.
func (s *invitationServiceImpl) Revoke(ctx context.Context, caller Caller, invitationID uuid.UUID) error {
	if !caller.IsAuthenticated() {
		return errUnauthenticated
	}

	invitation, err := s.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		return lookupError(err, "Invitation")
	}

	if err := authorize(s.permissions.ResolveOwnerPermission(ctx, caller, invitation.BoardID)); err != nil {
		return err
	}

	if err := s.invitationRepo.Deactivate(ctx, invitationID); err != nil {
		return response.NewStoreError("Failed to revoke invitation", err)
	}

	s.logger.Info("Invitation revoked",
		zap.String("board_id", invitation.BoardID.String()),
		zap.String("invitation_id", invitationID.String()),
	)
	return nil
}

// Redeem makes the caller a member of the invitation's board with the
// invitation's role. An existing membership has its role overwritten.
// The uses counter is bumped afterwards and its failure is only logged.
func (s *invitationServiceImpl) Redeem(ctx context.Context, caller Caller, code string) (*dto.RedeemInvitationResponse, error) {
	if !caller.IsAuthenticated() {
		return nil, errUnauthenticated
	}

	invitation, err := s.invitationRepo.FindByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if isNotFound(err) {
			s.metrics.IncrementInvitationRedeemed(metrics.RedeemResultInvalid)
			return nil, response.NewConflictError("Invalid invitation code", DetailInvitationInvalid)
		}
		s.metrics.IncrementInvitationRedeemed(metrics.RedeemResultError)
		return nil, response.NewStoreError("Failed to load invitation", err)
	}

	if !invitation.IsActive {
		s.metrics.IncrementInvitationRedeemed(metrics.RedeemResultRevoked)
		return nil, response.NewConflictError("This invitation has been revoked", DetailInvitationRevoked)
	}
	if invitation.IsExpired(s.now()) {
		s.metrics.IncrementInvitationRedeemed(metrics.RedeemResultExpired)
		return nil, response.NewConflictError("This invitation has expired", DetailInvitationExpired)
	}

	member := &domain.BoardMember{
		BoardID: invitation.BoardID,
		UserID:  caller.UserID,
		Email:   caller.Email,
		Role:    invitation.Role,
	}
	if err := s.memberRepo.Upsert(ctx, member); err != nil {
		s.metrics.IncrementInvitationRedeemed(metrics.RedeemResultError)
		s.logger.Error("Failed to add board member",
			zap.String("board_id", invitation.BoardID.String()),
			zap.String("user_id", caller.UserID.String()),
			zap.Error(err),
		)
		return nil, response.NewStoreError("Failed to join board", err)
	}

	if err := s.invitationRepo.IncrementUses(ctx, invitation.ID); err != nil {
		s.logger.Warn("Failed to increment invitation uses",
			zap.String("invitation_id", invitation.ID.String()),
			zap.Error(err),
		)
	}

	s.metrics.IncrementInvitationRedeemed(metrics.RedeemResultSuccess)
	s.logger.Info("Invitation redeemed",
		zap.String("board_id", invitation.BoardID.String()),
		zap.String("user_id", caller.UserID.String()),
		zap.String("role", string(invitation.Role)),
	)

	return &dto.RedeemInvitationResponse{
		BoardID: invitation.BoardID,
		Role:    string(invitation.Role),
	}, nil
}

// Preview describes an invitation without redeeming it
func (s *invitationServiceImpl) Preview(ctx context.Context, caller Caller, code string) (*dto.InvitationPreviewResponse, error) {
	if !caller.IsAuthenticated() {
		return nil, errUnauthenticated
	}

	invitation, err := s.invitationRepo.FindByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if isNotFound(err) {
			return nil, response.NewNotFoundError("Invitation not found", DetailInvitationInvalid)
		}
		return nil, response.NewStoreError("Failed to load invitation", err)
	}

	board, err := s.boardRepo.FindByID(ctx, invitation.BoardID)
	if err != nil {
		return nil, lookupError(err, "Board")
	}

	status := InvitationStatusValid
	switch {
	case !invitation.IsActive:
		status = InvitationStatusRevoked
	case invitation.IsExpired(s.now()):
		status = InvitationStatusExpired
	}

	return &dto.InvitationPreviewResponse{
		BoardID:   board.ID,
		BoardName: board.Name,
		Role:      string(invitation.Role),
		Status:    status,
		ExpiresAt: invitation.ExpiresAt,
	}, nil
}

// Members lists the board's members. The owner and any member may call it.
func (s *invitationServiceImpl) Members(ctx context.Context, caller Caller, boardID uuid.UUID) ([]*dto.MemberResponse, error) {
	if err := authorize(s.permissions.ResolveMemberAccess(ctx, caller, boardID)); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewStoreError("Failed to list members", err)
	}

	result := make([]*dto.MemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, toMemberResponse(m))
	}
	return result, nil
}

// RemoveMember deletes a membership row. Only the board owner may do this,
// and removing the owner's own row does not affect ownership.
func (s *invitationServiceImpl) RemoveMember(ctx context.Context, caller Caller, boardID, userID uuid.UUID) error {
	if err := authorize(s.permissions.ResolveOwnerPermission(ctx, caller, boardID)); err != nil {
		return err
	}

	if err := s.memberRepo.Delete(ctx, boardID, userID); err != nil {
		return response.NewStoreError("Failed to remove member", err)
	}

	s.logger.Info("Board member removed",
		zap.String("board_id", boardID.String()),
		zap.String("user_id", userID.String()),
	)
	return nil
}
