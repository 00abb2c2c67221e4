package services

import (
	"context"

	"github.com/dmitrijs2005/emergency15/internal/client/models"
)

// ---- fake client ----

// fakeClient implements api.Client for service unit tests.
type fakeClient struct {
	LoginRet    models.LoginData
	LoginErr    error
	RegisterRet models.RegisterData
	RegisterErr error
	VerifyErr   error
	ForgetRet   models.ForgetPasswordData
	ForgetErr   error
	ResetErr    error
	UpdateErr   error
	DeleteErr   error
	SaveLeadRet int64
	SaveLeadErr error
	MediaErr    error
	SOSRet      []models.Case
	SOSErr      error

	Calls      []string
	LastLogin  models.LoginInput
	LastUpdate models.ProfileInput
	LastLead   models.LeadInput
	LastMedia  models.Evidence
}

func (f *fakeClient) Login(_ context.Context, in models.LoginInput) (models.LoginData, error) {
	f.Calls = append(f.Calls, "login")
	f.LastLogin = in
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, _ models.RegisterInput) (models.RegisterData, error) {
	f.Calls = append(f.Calls, "register")
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) VerifyRegistration(_ context.Context, _ models.VerificationInput) error {
	f.Calls = append(f.Calls, "verify")
	return f.VerifyErr
}

func (f *fakeClient) ForgetPassword(_ context.Context, _ models.ForgetPasswordInput) (models.ForgetPasswordData, error) {
	f.Calls = append(f.Calls, "forget")
	return f.ForgetRet, f.ForgetErr
}

func (f *fakeClient) ResetPassword(_ context.Context, _ models.ResetPasswordInput) error {
	f.Calls = append(f.Calls, "reset")
	return f.ResetErr
}

func (f *fakeClient) UpdateUser(_ context.Context, in models.ProfileInput) error {
	f.Calls = append(f.Calls, "update")
	f.LastUpdate = in
	return f.UpdateErr
}

func (f *fakeClient) DeleteUser(_ context.Context) error {
	f.Calls = append(f.Calls, "delete")
	return f.DeleteErr
}

func (f *fakeClient) SaveLead(_ context.Context, in models.LeadInput) (int64, error) {
	f.Calls = append(f.Calls, "save_lead")
	f.LastLead = in
	return f.SaveLeadRet, f.SaveLeadErr
}

func (f *fakeClient) SaveLeadMedia(_ context.Context, ev models.Evidence) error {
	f.Calls = append(f.Calls, "save_media")
	f.LastMedia = ev
	return f.MediaErr
}

func (f *fakeClient) UserSOS(_ context.Context) ([]models.Case, error) {
	f.Calls = append(f.Calls, "user_sos")
	return f.SOSRet, f.SOSErr
}

// ---- fake session ----

type fakeSession struct {
	LoginErr   error
	SignOutErr error
	UpdateErr  error

	User      *models.User
	SignedOut bool
	Patches   []models.ProfilePatch
}

func (s *fakeSession) Login(_ context.Context, u models.User) error {
	if s.LoginErr != nil {
		return s.LoginErr
	}
	s.User = &u
	return nil
}

func (s *fakeSession) SignOut(_ context.Context) error {
	if s.SignOutErr != nil {
		return s.SignOutErr
	}
	s.SignedOut = true
	s.User = nil
	return nil
}

func (s *fakeSession) Update(_ context.Context, p models.ProfilePatch) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.Patches = append(s.Patches, p)
	return nil
}
