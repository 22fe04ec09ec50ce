package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc              func(ctx context.Context, board *domain.Board) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByIDWithContentFunc func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindAccessibleFunc      func(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error)
	UpdateFunc              func(ctx context.Context, board *domain.Board) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	CountFunc               func(ctx context.Context) (int64, error)
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockBoardRepository) FindByIDWithContent(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDWithContentFunc != nil {
		return m.FindByIDWithContentFunc(ctx, id)
	}
	return m.FindByID(ctx, id)
}

func (m *MockBoardRepository) FindAccessible(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error) {
	if m.FindAccessibleFunc != nil {
		return m.FindAccessibleFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockMemberRepository is a mock implementation of MemberRepository
type MockMemberRepository struct {
	FindByBoardAndUserFunc func(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardMember, error)
	FindByBoardIDFunc      func(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardMember, error)
	UpsertFunc             func(ctx context.Context, member *domain.BoardMember) error
	DeleteFunc             func(ctx context.Context, boardID, userID uuid.UUID) error
}

func (m *MockMemberRepository) FindByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardMember, error) {
	if m.FindByBoardAndUserFunc != nil {
		return m.FindByBoardAndUserFunc(ctx, boardID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockMemberRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardMember, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockMemberRepository) Upsert(ctx context.Context, member *domain.BoardMember) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, member)
	}
	return nil
}

func (m *MockMemberRepository) Delete(ctx context.Context, boardID, userID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, boardID, userID)
	}
	return nil
}

// MockInvitationRepository is a mock implementation of InvitationRepository
type MockInvitationRepository struct {
	CreateFunc        func(ctx context.Context, invitation *domain.BoardInvitation) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.BoardInvitation, error)
	FindByCodeFunc    func(ctx context.Context, code string) (*domain.BoardInvitation, error)
	FindByBoardIDFunc func(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardInvitation, error)
	DeactivateFunc    func(ctx context.Context, id uuid.UUID) error
	IncrementUsesFunc func(ctx context.Context, id uuid.UUID) error
	CountActiveFunc   func(ctx context.Context, now time.Time) (int64, error)
}

func (m *MockInvitationRepository) Create(ctx context.Context, invitation *domain.BoardInvitation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, invitation)
	}
	return nil
}

func (m *MockInvitationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardInvitation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockInvitationRepository) FindByCode(ctx context.Context, code string) (*domain.BoardInvitation, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockInvitationRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardInvitation, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockInvitationRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

func (m *MockInvitationRepository) IncrementUses(ctx context.Context, id uuid.UUID) error {
	if m.IncrementUsesFunc != nil {
		return m.IncrementUsesFunc(ctx, id)
	}
	return nil
}

func (m *MockInvitationRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx, now)
	}
	return 0, nil
}

// MockListRepository is a mock implementation of ListRepository
type MockListRepository struct {
	CreateFunc        func(ctx context.Context, list *domain.List) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.List, error)
	FindByBoardIDFunc func(ctx context.Context, boardID uuid.UUID) ([]*domain.List, error)
	MaxPositionFunc   func(ctx context.Context, boardID uuid.UUID) (int, bool, error)
	UpdateFunc        func(ctx context.Context, list *domain.List) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	CountFunc         func(ctx context.Context) (int64, error)
}

func (m *MockListRepository) Create(ctx context.Context, list *domain.List) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, list)
	}
	return nil
}

func (m *MockListRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockListRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.List, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockListRepository) MaxPosition(ctx context.Context, boardID uuid.UUID) (int, bool, error) {
	if m.MaxPositionFunc != nil {
		return m.MaxPositionFunc(ctx, boardID)
	}
	return 0, false, nil
}

func (m *MockListRepository) Update(ctx context.Context, list *domain.List) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, list)
	}
	return nil
}

func (m *MockListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockListRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCardRepository is a mock implementation of CardRepository
type MockCardRepository struct {
	CreateFunc       func(ctx context.Context, card *domain.Card) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	FindByListIDFunc func(ctx context.Context, listID uuid.UUID) ([]*domain.Card, error)
	MaxPositionFunc  func(ctx context.Context, listID uuid.UUID) (int, bool, error)
	UpdateFunc       func(ctx context.Context, card *domain.Card) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	CountFunc        func(ctx context.Context) (int64, error)
}

func (m *MockCardRepository) Create(ctx context.Context, card *domain.Card) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, card)
	}
	return nil
}

func (m *MockCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCardRepository) FindByListID(ctx context.Context, listID uuid.UUID) ([]*domain.Card, error) {
	if m.FindByListIDFunc != nil {
		return m.FindByListIDFunc(ctx, listID)
	}
	return nil, nil
}

func (m *MockCardRepository) MaxPosition(ctx context.Context, listID uuid.UUID) (int, bool, error) {
	if m.MaxPositionFunc != nil {
		return m.MaxPositionFunc(ctx, listID)
	}
	return 0, false, nil
}

func (m *MockCardRepository) Update(ctx context.Context, card *domain.Card) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, card)
	}
	return nil
}

func (m *MockCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCardRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockExportRepository is a mock implementation of ExportRepository
type MockExportRepository struct {
	CreateFunc        func(ctx context.Context, export *domain.BoardExport) error
	FindByBoardIDFunc func(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardExport, error)
}

func (m *MockExportRepository) Create(ctx context.Context, export *domain.BoardExport) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, export)
	}
	return nil
}

func (m *MockExportRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardExport, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	UploadFileFunc         func(ctx context.Context, key string, body io.Reader, contentType string) error
	PresignDownloadURLFunc func(ctx context.Context, key string, expiry time.Duration) (string, error)
	DeleteFileFunc         func(ctx context.Context, key string) error
}

func (m *MockObjectStorage) UploadFile(ctx context.Context, key string, body io.Reader, contentType string) error {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, body, contentType)
	}
	return nil
}

func (m *MockObjectStorage) PresignDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if m.PresignDownloadURLFunc != nil {
		return m.PresignDownloadURLFunc(ctx, key, expiry)
	}
	return "https://storage.example.com/" + key, nil
}

func (m *MockObjectStorage) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	return nil
}

// memStore backs the repository mocks with maps so lifecycle tests can
// observe state across several service calls
type memStore struct {
	mu          sync.Mutex
	boards      map[uuid.UUID]*domain.Board
	members     map[[2]uuid.UUID]*domain.BoardMember
	invitations map[uuid.UUID]*domain.BoardInvitation
	lists       map[uuid.UUID]*domain.List
}

func newMemStore() *memStore {
	return &memStore{
		boards:      make(map[uuid.UUID]*domain.Board),
		members:     make(map[[2]uuid.UUID]*domain.BoardMember),
		invitations: make(map[uuid.UUID]*domain.BoardInvitation),
		lists:       make(map[uuid.UUID]*domain.List),
	}
}

func (s *memStore) addBoard(owner uuid.UUID, visibility domain.Visibility) *domain.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := &domain.Board{Name: "Board", OwnerID: owner, Visibility: visibility}
	b.ID = uuid.New()
	s.boards[b.ID] = b
	return b
}

func (s *memStore) addMember(boardID, userID uuid.UUID, role domain.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := &domain.BoardMember{BoardID: boardID, UserID: userID, Role: role}
	m.ID = uuid.New()
	s.members[[2]uuid.UUID{boardID, userID}] = m
}

func (s *memStore) boardRepo() *MockBoardRepository {
	return &MockBoardRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			b, ok := s.boards[id]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			copied := *b
			return &copied, nil
		},
	}
}

func (s *memStore) memberRepo() *MockMemberRepository {
	return &MockMemberRepository{
		FindByBoardAndUserFunc: func(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardMember, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			m, ok := s.members[[2]uuid.UUID{boardID, userID}]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			copied := *m
			return &copied, nil
		},
		FindByBoardIDFunc: func(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardMember, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []*domain.BoardMember
			for key, m := range s.members {
				if key[0] == boardID {
					copied := *m
					out = append(out, &copied)
				}
			}
			return out, nil
		},
		UpsertFunc: func(ctx context.Context, member *domain.BoardMember) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			key := [2]uuid.UUID{member.BoardID, member.UserID}
			if existing, ok := s.members[key]; ok {
				existing.Role = member.Role
				existing.Email = member.Email
				return nil
			}
			copied := *member
			copied.ID = uuid.New()
			s.members[key] = &copied
			return nil
		},
		DeleteFunc: func(ctx context.Context, boardID, userID uuid.UUID) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.members, [2]uuid.UUID{boardID, userID})
			return nil
		},
	}
}

func (s *memStore) invitationRepo() *MockInvitationRepository {
	return &MockInvitationRepository{
		CreateFunc: func(ctx context.Context, invitation *domain.BoardInvitation) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			for _, existing := range s.invitations {
				if existing.Code == invitation.Code {
					return gorm.ErrDuplicatedKey
				}
			}
			if invitation.ID == uuid.Nil {
				invitation.ID = uuid.New()
			}
			copied := *invitation
			s.invitations[invitation.ID] = &copied
			return nil
		},
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.BoardInvitation, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			inv, ok := s.invitations[id]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			copied := *inv
			return &copied, nil
		},
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.BoardInvitation, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			for _, inv := range s.invitations {
				if inv.Code == code {
					copied := *inv
					return &copied, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
		FindByBoardIDFunc: func(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardInvitation, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []*domain.BoardInvitation
			for _, inv := range s.invitations {
				if inv.BoardID == boardID {
					copied := *inv
					out = append(out, &copied)
				}
			}
			return out, nil
		},
		DeactivateFunc: func(ctx context.Context, id uuid.UUID) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if inv, ok := s.invitations[id]; ok {
				inv.IsActive = false
			}
			return nil
		},
		IncrementUsesFunc: func(ctx context.Context, id uuid.UUID) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if inv, ok := s.invitations[id]; ok {
				inv.UsesCount++
			}
			return nil
		},
	}
}

func (s *memStore) listRepo() *MockListRepository {
	return &MockListRepository{
		CreateFunc: func(ctx context.Context, list *domain.List) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			list.ID = uuid.New()
			copied := *list
			s.lists[list.ID] = &copied
			return nil
		},
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.List, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			l, ok := s.lists[id]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			copied := *l
			return &copied, nil
		},
		FindByBoardIDFunc: func(ctx context.Context, boardID uuid.UUID) ([]*domain.List, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []*domain.List
			for _, l := range s.lists {
				if l.BoardID == boardID {
					copied := *l
					out = append(out, &copied)
				}
			}
			sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
			return out, nil
		},
		MaxPositionFunc: func(ctx context.Context, boardID uuid.UUID) (int, bool, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			max, found := 0, false
			for _, l := range s.lists {
				if l.BoardID == boardID && (!found || l.Position > max) {
					max, found = l.Position, true
				}
			}
			return max, found, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.lists, id)
			return nil
		},
	}
}

func (s *memStore) member(boardID, userID uuid.UUID) *domain.BoardMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members[[2]uuid.UUID{boardID, userID}]
}

func (s *memStore) memberCount(boardID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for key := range s.members {
		if key[0] == boardID {
			n++
		}
	}
	return n
}

func (s *memStore) invitation(id uuid.UUID) *domain.BoardInvitation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invitations[id]
}

var errStore = errors.New("connection refused")

// fixedClock returns a controllable clock starting at t
type fixedClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFixedClock(t time.Time) *fixedClock {
	return &fixedClock{t: t}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// sequenceCodes returns a generator yielding codes in order
func sequenceCodes(codes ...string) CodeGenerator {
	var mu sync.Mutex
	i := 0
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		code := codes[i%len(codes)]
		i++
		return code, nil
	}
}
