package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "roastery/internal/errors"
	"roastery/internal/model"
	"roastery/internal/session"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthService_SignUp(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful signup",
			username: "alice",
			email:    "a@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email already registered",
			username: "alice",
			email:    "taken@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "taken@x.com").Return(&model.User{Email: "taken@x.com"}, nil)
			},
			expectedError: apperrors.ErrDuplicateEmail,
		},
		{
			name:     "lost race against concurrent signup",
			username: "alice",
			email:    "racing@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "racing@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			store := session.NewMemoryStore(time.Hour)
			svc := NewAuthService(mockRepo, store)
			user, err := svc.SignUp(context.Background(), tt.username, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.username, user.Username)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), 10)
	stored := &model.User{ID: 42, Username: "alice", Email: "a@x.com", PasswordHash: string(hashed)}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "a@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "a@x.com",
			password: "not-the-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			store := session.NewMemoryStore(time.Hour)
			svc := NewAuthService(mockRepo, store)

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)

				// the session resolves back to the authenticated user
				userID, err := store.Resolve(context.Background(), token)
				assert.NoError(t, err)
				assert.Equal(t, stored.ID, userID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), 10)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "known@x.com").Return(&model.User{
		ID: 1, Email: "known@x.com", PasswordHash: string(hashed),
	}, nil)
	mockRepo.On("FindByEmail", mock.Anything, "unknown@x.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(mockRepo, session.NewMemoryStore(time.Hour))

	_, _, errWrongPassword := svc.Login(context.Background(), "known@x.com", "wrong")
	_, _, errUnknownEmail := svc.Login(context.Background(), "unknown@x.com", "wrong")

	// unknown email vs wrong password must be indistinguishable
	assert.Equal(t, errWrongPassword, errUnknownEmail)
	assert.Equal(t, apperrors.ErrInvalidCredentials, errWrongPassword)
}

func TestAuthService_Logout(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), 10)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{
		ID: 7, Email: "a@x.com", PasswordHash: string(hashed),
	}, nil)

	store := session.NewMemoryStore(time.Hour)
	svc := NewAuthService(mockRepo, store)

	token, _, err := svc.Login(context.Background(), "a@x.com", "secret1")
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(context.Background(), token))

	_, err = store.Resolve(context.Background(), token)
	assert.Equal(t, apperrors.ErrUnauthenticated, err)

	// logging out an already-dead token is not an error
	assert.NoError(t, svc.Logout(context.Background(), token))
}
