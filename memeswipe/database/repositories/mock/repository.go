package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	models "github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockStatsRepository is a mock of StatsRepository interface.
type MockStatsRepository struct {
	ctrl     *gomock.Controller
	recorder *MockStatsRepositoryMockRecorder
	isgomock struct{}
}

// MockStatsRepositoryMockRecorder is the mock recorder for MockStatsRepository.
type MockStatsRepositoryMockRecorder struct {
	mock *MockStatsRepository
}

// NewMockStatsRepository creates a new mock instance.
func NewMockStatsRepository(ctrl *gomock.Controller) *MockStatsRepository {
	mock := &MockStatsRepository{ctrl: ctrl}
	mock.recorder = &MockStatsRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStatsRepository) EXPECT() *MockStatsRepositoryMockRecorder {
	return m.recorder
}

// AddDiamonds mocks base method.
func (m *MockStatsRepository) AddDiamonds(ctx context.Context, userID int64, delta int64, now time.Time) (*models.UserStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddDiamonds", ctx, userID, delta, now)
	ret0, _ := ret[0].(*models.UserStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddDiamonds indicates an expected call of AddDiamonds.
func (mr *MockStatsRepositoryMockRecorder) AddDiamonds(ctx, userID, delta, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddDiamonds", reflect.TypeOf((*MockStatsRepository)(nil).AddDiamonds), ctx, userID, delta, now)
}

// AddExperience mocks base method.
func (m *MockStatsRepository) AddExperience(ctx context.Context, userID int64, delta int64, now time.Time) (*models.UserStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddExperience", ctx, userID, delta, now)
	ret0, _ := ret[0].(*models.UserStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddExperience indicates an expected call of AddExperience.
func (mr *MockStatsRepositoryMockRecorder) AddExperience(ctx, userID, delta, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddExperience", reflect.TypeOf((*MockStatsRepository)(nil).AddExperience), ctx, userID, delta, now)
}

// Create mocks base method.
func (m *MockStatsRepository) Create(ctx context.Context, stats *models.UserStats) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, stats)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockStatsRepositoryMockRecorder) Create(ctx, stats any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockStatsRepository)(nil).Create), ctx, stats)
}

// GetByUserID mocks base method.
func (m *MockStatsRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", ctx, userID)
	ret0, _ := ret[0].(*models.UserStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockStatsRepositoryMockRecorder) GetByUserID(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockStatsRepository)(nil).GetByUserID), ctx, userID)
}

// GetForUpdate mocks base method.
func (m *MockStatsRepository) GetForUpdate(ctx context.Context, userID int64) (*models.UserStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetForUpdate", ctx, userID)
	ret0, _ := ret[0].(*models.UserStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetForUpdate indicates an expected call of GetForUpdate.
func (mr *MockStatsRepositoryMockRecorder) GetForUpdate(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetForUpdate", reflect.TypeOf((*MockStatsRepository)(nil).GetForUpdate), ctx, userID)
}

// RaiseLevel mocks base method.
func (m *MockStatsRepository) RaiseLevel(ctx context.Context, userID int64, newLevel int, now time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RaiseLevel", ctx, userID, newLevel, now)
	ret0, _ := ret[0].(error)
	return ret0
}

// RaiseLevel indicates an expected call of RaiseLevel.
func (mr *MockStatsRepositoryMockRecorder) RaiseLevel(ctx, userID, newLevel, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RaiseLevel", reflect.TypeOf((*MockStatsRepository)(nil).RaiseLevel), ctx, userID, newLevel, now)
}

// RecordUpload mocks base method.
func (m *MockStatsRepository) RecordUpload(ctx context.Context, userID int64, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordUpload", ctx, userID, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecordUpload indicates an expected call of RecordUpload.
func (mr *MockStatsRepositoryMockRecorder) RecordUpload(ctx, userID, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordUpload", reflect.TypeOf((*MockStatsRepository)(nil).RecordUpload), ctx, userID, at)
}

// SpendDiamonds mocks base method.
func (m *MockStatsRepository) SpendDiamonds(ctx context.Context, userID int64, cost int64, now time.Time) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SpendDiamonds", ctx, userID, cost, now)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SpendDiamonds indicates an expected call of SpendDiamonds.
func (mr *MockStatsRepositoryMockRecorder) SpendDiamonds(ctx, userID, cost, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SpendDiamonds", reflect.TypeOf((*MockStatsRepository)(nil).SpendDiamonds), ctx, userID, cost, now)
}

// UpdateStreak mocks base method.
func (m *MockStatsRepository) UpdateStreak(ctx context.Context, userID int64, streak int, longest int, lastActive time.Time, now time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStreak", ctx, userID, streak, longest, lastActive, now)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStreak indicates an expected call of UpdateStreak.
func (mr *MockStatsRepositoryMockRecorder) UpdateStreak(ctx, userID, streak, longest, lastActive, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStreak", reflect.TypeOf((*MockStatsRepository)(nil).UpdateStreak), ctx, userID, streak, longest, lastActive, now)
}

// MockQuestRepository is a mock of QuestRepository interface.
type MockQuestRepository struct {
	ctrl     *gomock.Controller
	recorder *MockQuestRepositoryMockRecorder
	isgomock struct{}
}

// MockQuestRepositoryMockRecorder is the mock recorder for MockQuestRepository.
type MockQuestRepositoryMockRecorder struct {
	mock *MockQuestRepository
}

// NewMockQuestRepository creates a new mock instance.
func NewMockQuestRepository(ctrl *gomock.Controller) *MockQuestRepository {
	mock := &MockQuestRepository{ctrl: ctrl}
	mock.recorder = &MockQuestRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockQuestRepository) EXPECT() *MockQuestRepositoryMockRecorder {
	return m.recorder
}

// DeleteAssignments mocks base method.
func (m *MockQuestRepository) DeleteAssignments(ctx context.Context, userID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteAssignments", ctx, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteAssignments indicates an expected call of DeleteAssignments.
func (mr *MockQuestRepositoryMockRecorder) DeleteAssignments(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteAssignments", reflect.TypeOf((*MockQuestRepository)(nil).DeleteAssignments), ctx, userID)
}

// GetAssignment mocks base method.
func (m *MockQuestRepository) GetAssignment(ctx context.Context, userID int64, templateID int64) (*models.QuestAssignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAssignment", ctx, userID, templateID)
	ret0, _ := ret[0].(*models.QuestAssignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAssignment indicates an expected call of GetAssignment.
func (mr *MockQuestRepositoryMockRecorder) GetAssignment(ctx, userID, templateID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAssignment", reflect.TypeOf((*MockQuestRepository)(nil).GetAssignment), ctx, userID, templateID)
}

// IncrementProgress mocks base method.
func (m *MockQuestRepository) IncrementProgress(ctx context.Context, assignmentID int64, delta int) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementProgress", ctx, assignmentID, delta)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IncrementProgress indicates an expected call of IncrementProgress.
func (mr *MockQuestRepositoryMockRecorder) IncrementProgress(ctx, assignmentID, delta any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementProgress", reflect.TypeOf((*MockQuestRepository)(nil).IncrementProgress), ctx, assignmentID, delta)
}

// InsertAssignments mocks base method.
func (m *MockQuestRepository) InsertAssignments(ctx context.Context, assignments []*models.QuestAssignment) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertAssignments", ctx, assignments)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InsertAssignments indicates an expected call of InsertAssignments.
func (mr *MockQuestRepositoryMockRecorder) InsertAssignments(ctx, assignments any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertAssignments", reflect.TypeOf((*MockQuestRepository)(nil).InsertAssignments), ctx, assignments)
}

// ListAssignments mocks base method.
func (m *MockQuestRepository) ListAssignments(ctx context.Context, userID int64) ([]*models.QuestAssignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAssignments", ctx, userID)
	ret0, _ := ret[0].([]*models.QuestAssignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListAssignments indicates an expected call of ListAssignments.
func (mr *MockQuestRepositoryMockRecorder) ListAssignments(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAssignments", reflect.TypeOf((*MockQuestRepository)(nil).ListAssignments), ctx, userID)
}

// ListOpenByKind mocks base method.
func (m *MockQuestRepository) ListOpenByKind(ctx context.Context, userID int64, kind models.ActionKind, now time.Time) ([]*models.QuestAssignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOpenByKind", ctx, userID, kind, now)
	ret0, _ := ret[0].([]*models.QuestAssignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOpenByKind indicates an expected call of ListOpenByKind.
func (mr *MockQuestRepositoryMockRecorder) ListOpenByKind(ctx, userID, kind, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOpenByKind", reflect.TypeOf((*MockQuestRepository)(nil).ListOpenByKind), ctx, userID, kind, now)
}

// ListTemplates mocks base method.
func (m *MockQuestRepository) ListTemplates(ctx context.Context) ([]*models.QuestTemplate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTemplates", ctx)
	ret0, _ := ret[0].([]*models.QuestTemplate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTemplates indicates an expected call of ListTemplates.
func (mr *MockQuestRepositoryMockRecorder) ListTemplates(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTemplates", reflect.TypeOf((*MockQuestRepository)(nil).ListTemplates), ctx)
}

// MarkCompleted mocks base method.
func (m *MockQuestRepository) MarkCompleted(ctx context.Context, assignmentID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkCompleted", ctx, assignmentID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MarkCompleted indicates an expected call of MarkCompleted.
func (mr *MockQuestRepositoryMockRecorder) MarkCompleted(ctx, assignmentID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkCompleted", reflect.TypeOf((*MockQuestRepository)(nil).MarkCompleted), ctx, assignmentID)
}

// SetProgress mocks base method.
func (m *MockQuestRepository) SetProgress(ctx context.Context, assignmentID int64, progress int) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetProgress", ctx, assignmentID, progress)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SetProgress indicates an expected call of SetProgress.
func (mr *MockQuestRepositoryMockRecorder) SetProgress(ctx, assignmentID, progress any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetProgress", reflect.TypeOf((*MockQuestRepository)(nil).SetProgress), ctx, assignmentID, progress)
}

// MockPostRepository is a mock of PostRepository interface.
type MockPostRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPostRepositoryMockRecorder
	isgomock struct{}
}

// MockPostRepositoryMockRecorder is the mock recorder for MockPostRepository.
type MockPostRepositoryMockRecorder struct {
	mock *MockPostRepository
}

// NewMockPostRepository creates a new mock instance.
func NewMockPostRepository(ctrl *gomock.Controller) *MockPostRepository {
	mock := &MockPostRepository{ctrl: ctrl}
	mock.recorder = &MockPostRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPostRepository) EXPECT() *MockPostRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, post)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockPostRepositoryMockRecorder) Create(ctx, post any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockPostRepository)(nil).Create), ctx, post)
}

// GetByID mocks base method.
func (m *MockPostRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, postID)
	ret0, _ := ret[0].(*models.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockPostRepositoryMockRecorder) GetByID(ctx, postID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockPostRepository)(nil).GetByID), ctx, postID)
}

// IncrementVoteCount mocks base method.
func (m *MockPostRepository) IncrementVoteCount(ctx context.Context, postID int64, kind models.VoteKind) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementVoteCount", ctx, postID, kind)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementVoteCount indicates an expected call of IncrementVoteCount.
func (mr *MockPostRepositoryMockRecorder) IncrementVoteCount(ctx, postID, kind any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementVoteCount", reflect.TypeOf((*MockPostRepository)(nil).IncrementVoteCount), ctx, postID, kind)
}

// InsertVote mocks base method.
func (m *MockPostRepository) InsertVote(ctx context.Context, vote *models.Vote) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertVote", ctx, vote)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InsertVote indicates an expected call of InsertVote.
func (mr *MockPostRepositoryMockRecorder) InsertVote(ctx, vote any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertVote", reflect.TypeOf((*MockPostRepository)(nil).InsertVote), ctx, vote)
}

// ListByUser mocks base method.
func (m *MockPostRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByUser", ctx, userID)
	ret0, _ := ret[0].([]*models.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByUser indicates an expected call of ListByUser.
func (mr *MockPostRepositoryMockRecorder) ListByUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByUser", reflect.TypeOf((*MockPostRepository)(nil).ListByUser), ctx, userID)
}

// RandomUnvoted mocks base method.
func (m *MockPostRepository) RandomUnvoted(ctx context.Context, userID int64) (*models.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RandomUnvoted", ctx, userID)
	ret0, _ := ret[0].(*models.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RandomUnvoted indicates an expected call of RandomUnvoted.
func (mr *MockPostRepositoryMockRecorder) RandomUnvoted(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RandomUnvoted", reflect.TypeOf((*MockPostRepository)(nil).RandomUnvoted), ctx, userID)
}

// TotalUpvotesForUser mocks base method.
func (m *MockPostRepository) TotalUpvotesForUser(ctx context.Context, userID int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TotalUpvotesForUser", ctx, userID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TotalUpvotesForUser indicates an expected call of TotalUpvotesForUser.
func (mr *MockPostRepositoryMockRecorder) TotalUpvotesForUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TotalUpvotesForUser", reflect.TypeOf((*MockPostRepository)(nil).TotalUpvotesForUser), ctx, userID)
}

// MockItemRepository is a mock of ItemRepository interface.
type MockItemRepository struct {
	ctrl     *gomock.Controller
	recorder *MockItemRepositoryMockRecorder
	isgomock struct{}
}

// MockItemRepositoryMockRecorder is the mock recorder for MockItemRepository.
type MockItemRepositoryMockRecorder struct {
	mock *MockItemRepository
}

// NewMockItemRepository creates a new mock instance.
func NewMockItemRepository(ctrl *gomock.Controller) *MockItemRepository {
	mock := &MockItemRepository{ctrl: ctrl}
	mock.recorder = &MockItemRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockItemRepository) EXPECT() *MockItemRepositoryMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockItemRepository) GetByID(ctx context.Context, itemID int64) (*models.Item, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, itemID)
	ret0, _ := ret[0].(*models.Item)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockItemRepositoryMockRecorder) GetByID(ctx, itemID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockItemRepository)(nil).GetByID), ctx, itemID)
}

// Grant mocks base method.
func (m *MockItemRepository) Grant(ctx context.Context, userID int64, itemID int64, now time.Time) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Grant", ctx, userID, itemID, now)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Grant indicates an expected call of Grant.
func (mr *MockItemRepositoryMockRecorder) Grant(ctx, userID, itemID, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Grant", reflect.TypeOf((*MockItemRepository)(nil).Grant), ctx, userID, itemID, now)
}

// List mocks base method.
func (m *MockItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*models.Item)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockItemRepositoryMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockItemRepository)(nil).List), ctx)
}

// ListOwned mocks base method.
func (m *MockItemRepository) ListOwned(ctx context.Context, userID int64) ([]*models.Item, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOwned", ctx, userID)
	ret0, _ := ret[0].([]*models.Item)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOwned indicates an expected call of ListOwned.
func (mr *MockItemRepositoryMockRecorder) ListOwned(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOwned", reflect.TypeOf((*MockItemRepository)(nil).ListOwned), ctx, userID)
}

// OwnsByName mocks base method.
func (m *MockItemRepository) OwnsByName(ctx context.Context, userID int64, name string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OwnsByName", ctx, userID, name)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OwnsByName indicates an expected call of OwnsByName.
func (mr *MockItemRepositoryMockRecorder) OwnsByName(ctx, userID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OwnsByName", reflect.TypeOf((*MockItemRepository)(nil).OwnsByName), ctx, userID, name)
}

// MockLeaderRepository is a mock of LeaderRepository interface.
type MockLeaderRepository struct {
	ctrl     *gomock.Controller
	recorder *MockLeaderRepositoryMockRecorder
	isgomock struct{}
}

// MockLeaderRepositoryMockRecorder is the mock recorder for MockLeaderRepository.
type MockLeaderRepositoryMockRecorder struct {
	mock *MockLeaderRepository
}

// NewMockLeaderRepository creates a new mock instance.
func NewMockLeaderRepository(ctrl *gomock.Controller) *MockLeaderRepository {
	mock := &MockLeaderRepository{ctrl: ctrl}
	mock.recorder = &MockLeaderRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLeaderRepository) EXPECT() *MockLeaderRepositoryMockRecorder {
	return m.recorder
}

// TopByUpvotes mocks base method.
func (m *MockLeaderRepository) TopByUpvotes(ctx context.Context, since time.Time, limit int) ([]*models.LeaderRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TopByUpvotes", ctx, since, limit)
	ret0, _ := ret[0].([]*models.LeaderRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TopByUpvotes indicates an expected call of TopByUpvotes.
func (mr *MockLeaderRepositoryMockRecorder) TopByUpvotes(ctx, since, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TopByUpvotes", reflect.TypeOf((*MockLeaderRepository)(nil).TopByUpvotes), ctx, since, limit)
}
