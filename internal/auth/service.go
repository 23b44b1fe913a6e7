package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

type AdminInput struct {
	Username string
	Password string
	Role     string
	Name     string
}

type AdminUpdate struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	Name     *string `json:"name,omitempty"`
}

type AuthService interface {
	Register(input RegisterInput) (string, *User, error)
	Login(email, password string) (string, *User, error)
	AdminLogin(username, password string) (string, *Admin, error)
	ParseToken(token string) (*Claims, error)

	Admins() []Admin
	AddAdmin(input AdminInput) (*Admin, error)
	UpdateAdmin(id string, upd AdminUpdate) error
	RemoveAdmin(actorID, id string) error
}

type authService struct {
	mu        sync.Mutex
	storage   *Storage
	log       *logrus.Entry
	jwtSecret []byte

	users  []User
	admins []Admin
}

// NewService loads both rosters. When the admin roster key is absent a
// superadmin is seeded from the given credentials so the console is never
// locked out.
func NewService(storage *Storage, log *logrus.Entry, jwtSecret, seedUsername, seedPassword string) (AuthService, error) {
	s := &authService{
		storage:   storage,
		log:       log,
		jwtSecret: []byte(jwtSecret),
	}

	var ok bool
	if s.users, ok = storage.LoadUsers(); !ok {
		s.users = []User{}
		storage.SaveUsers(s.users)
	}

	if s.admins, ok = storage.LoadAdmins(); !ok || len(s.admins) == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.admins = []Admin{{
			ID:           uuid.NewString(),
			Username:     seedUsername,
			PasswordHash: string(hash),
			Role:         RoleSuperAdmin,
			Name:         seedUsername,
			CreatedAt:    time.Now(),
		}}
		storage.SaveAdmins(s.admins)
		log.Infof("seeded superadmin account %q", seedUsername)
	}

	return s, nil
}

func (s *authService) Register(input RegisterInput) (string, *User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return "", nil, errNameRequired
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return "", nil, errEmailRequired
	}
	if len(input.Password) < 6 {
		return "", nil, errPasswordTooShort
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return "", nil, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleCustomer,
		Phone:        input.Phone,
		Address:      input.Address,
		CreatedAt:    time.Now(),
	}
	s.users = append(s.users, user)
	s.storage.SaveUsers(s.users)

	token, err := s.issueToken(user.ID, user.Name, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *authService) Login(email, password string) (string, *User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(s.users[i].PasswordHash), []byte(password)) != nil {
			return "", nil, ErrInvalidCredentials
		}
		user := s.users[i]
		token, err := s.issueToken(user.ID, user.Name, user.Role)
		if err != nil {
			return "", nil, err
		}
		return token, &user, nil
	}
	return "", nil, ErrInvalidCredentials
}

func (s *authService) AdminLogin(username, password string) (string, *Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.admins {
		if s.admins[i].Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(s.admins[i].PasswordHash), []byte(password)) != nil {
			return "", nil, ErrInvalidCredentials
		}
		admin := s.admins[i]
		token, err := s.issueToken(admin.ID, admin.Name, admin.Role)
		if err != nil {
			return "", nil, err
		}
		return token, &admin, nil
	}
	return "", nil, ErrInvalidCredentials
}

func (s *authService) issueToken(id, name, role string) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Name: name,
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *authService) Admins() []Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Admin(nil), s.admins...)
}

func (s *authService) AddAdmin(input AdminInput) (*Admin, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, errUsernameRequired
	}
	if len(input.Password) < 6 {
		return nil, errPasswordTooShort
	}
	if input.Role != RoleAdmin && input.Role != RoleSuperAdmin {
		return nil, errInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.admins {
		if a.Username == input.Username {
			return nil, ErrUsernameTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := Admin{
		ID:           uuid.NewString(),
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
		Name:         input.Name,
		CreatedAt:    time.Now(),
	}
	s.admins = append(s.admins, admin)
	s.storage.SaveAdmins(s.admins)
	return &admin, nil
}

func (s *authService) UpdateAdmin(id string, upd AdminUpdate) error {
	if upd.Role != nil && *upd.Role != RoleAdmin && *upd.Role != RoleSuperAdmin {
		return errInvalidRole
	}
	if upd.Password != nil && len(*upd.Password) < 6 {
		return errPasswordTooShort
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.admins {
		if s.admins[i].ID != id {
			continue
		}
		a := &s.admins[i]
		if upd.Username != nil && strings.TrimSpace(*upd.Username) != "" {
			a.Username = *upd.Username
		}
		if upd.Name != nil {
			a.Name = *upd.Name
		}
		if upd.Role != nil {
			a.Role = *upd.Role
		}
		if upd.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			a.PasswordHash = string(hash)
		}
		s.storage.SaveAdmins(s.admins)
		return nil
	}
	return ErrAdminNotFound
}

// RemoveAdmin refuses when the roster would be emptied and when an admin
// tries to remove their own account.
func (s *authService) RemoveAdmin(actorID, id string) error {
	if actorID == id {
		return ErrSelfDelete
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.admins) <= 1 {
		return ErrLastAdmin
	}

	for i := range s.admins {
		if s.admins[i].ID == id {
			s.admins = append(s.admins[:i], s.admins[i+1:]...)
			s.storage.SaveAdmins(s.admins)
			return nil
		}
	}
	return ErrAdminNotFound
}
