package service

import (
	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
)

func toBoardResponse(b *domain.Board) *dto.BoardResponse {
	return &dto.BoardResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Visibility:  string(b.Visibility),
		OwnerID:     b.OwnerID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBoardDetailResponse(b *domain.Board) *dto.BoardDetailResponse {
	lists := make([]dto.ListResponse, 0, len(b.Lists))
	for i := range b.Lists {
		lists = append(lists, *toListResponse(&b.Lists[i], true))
	}
	return &dto.BoardDetailResponse{
		BoardResponse: *toBoardResponse(b),
		Lists:         lists,
	}
}

func toListResponse(l *domain.List, withCards bool) *dto.ListResponse {
	resp := &dto.ListResponse{
		ID:        l.ID,
		BoardID:   l.BoardID,
		Title:     l.Title,
		Position:  l.Position,
		CreatedAt: l.CreatedAt,
	}
	if withCards {
		resp.Cards = make([]dto.CardResponse, 0, len(l.Cards))
		for i := range l.Cards {
			resp.Cards = append(resp.Cards, *toCardResponse(&l.Cards[i]))
		}
	}
	return resp
}

func toCardResponse(c *domain.Card) *dto.CardResponse {
	return &dto.CardResponse{
		ID:          c.ID,
		ListID:      c.ListID,
		Title:       c.Title,
		Description: c.Description,
		Position:    c.Position,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toInvitationResponse(i *domain.BoardInvitation) *dto.InvitationResponse {
	return &dto.InvitationResponse{
		ID:        i.ID,
		BoardID:   i.BoardID,
		Code:      i.Code,
		Role:      string(i.Role),
		CreatedBy: i.CreatedBy,
		ExpiresAt: i.ExpiresAt,
		IsActive:  i.IsActive,
		UsesCount: i.UsesCount,
		CreatedAt: i.CreatedAt,
	}
}

func toMemberResponse(m *domain.BoardMember) *dto.MemberResponse {
	return &dto.MemberResponse{
		ID:       m.ID,
		BoardID:  m.BoardID,
		UserID:   m.UserID,
		Email:    m.Email,
		Role:     string(m.Role),
		JoinedAt: m.CreatedAt,
	}
}
