package memory

import (
	"context"

	"github.com/99minutos/storefront/internal/core/domain"
)

func (s *Store) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == account.Email {
			return nil, domain.ErrUserExists
		}
	}
	s.nextUser++
	stored := cloneAccount(account)
	stored.ID = s.nextUser
	s.users[stored.ID] = stored
	return cloneAccount(stored), nil
}

func (s *Store) FindByID(_ context.Context, id int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return cloneAccount(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *Store) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	return s.findUser(func(a *domain.Account) bool { return a.Email == email })
}

func (s *Store) FindByVerificationToken(_ context.Context, token string) (*domain.Account, error) {
	return s.findUser(func(a *domain.Account) bool { return a.VerificationToken != "" && a.VerificationToken == token })
}

func (s *Store) FindByResetToken(_ context.Context, token string) (*domain.Account, error) {
	return s.findUser(func(a *domain.Account) bool { return a.ResetToken != "" && a.ResetToken == token })
}

func (s *Store) Update(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[account.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for id, u := range s.users {
		if id != account.ID && u.Email == account.Email {
			return domain.ErrUserExists
		}
	}
	s.users[account.ID] = cloneAccount(account)
	return nil
}

func (s *Store) findUser(match func(*domain.Account) bool) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if match(u) {
			return cloneAccount(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}
