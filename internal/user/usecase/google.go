package usecase

import (
	"context"

	"project-tracker/internal/model"
	"project-tracker/internal/user"
	repo "project-tracker/internal/user/repository"
)

// GoogleConfig exposes the client id the browser needs to start Google sign-in.
func (uc *implUseCase) GoogleConfig(ctx context.Context) user.GoogleConfigOutput {
	if uc.google == nil {
		return user.GoogleConfigOutput{}
	}
	return user.GoogleConfigOutput{ClientID: uc.google.ClientID(), Enabled: uc.google.Enabled()}
}

// GoogleLogin verifies a Google ID token and signs the matching account in,
// creating it on first use. Names are refreshed from the Google profile.
func (uc *implUseCase) GoogleLogin(ctx context.Context, credential string) (user.TokenOutput, error) {
	if uc.google == nil || !uc.google.Enabled() {
		return user.TokenOutput{}, user.ErrGoogleDisabled
	}

	id, err := uc.google.Verify(ctx, credential)
	if err != nil {
		uc.l.Warnf(ctx, "uc.GoogleLogin Verify: %v", err)
		return user.TokenOutput{}, user.ErrInvalidGoogleToken
	}
	email := normalizeEmail(id.Email)

	u, err := uc.repo.GetOne(ctx, repo.GetOneOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GoogleLogin GetOne: %v", err)
		return user.TokenOutput{}, err
	}

	created := false
	if u.ID == 0 {
		u, err = uc.repo.Create(ctx, repo.CreateOptions{
			Email:      email,
			FirstName:  id.GivenName,
			LastName:   id.FamilyName,
			Role:       model.DefaultRole,
			IsActive:   true,
			DateJoined: uc.now(),
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.GoogleLogin Create: %v", err)
			return user.TokenOutput{}, err
		}
		created = true
	} else if changed(id.GivenName, u.FirstName) || changed(id.FamilyName, u.LastName) {
		u, err = uc.repo.Update(ctx, repo.UpdateOptions{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: pick(id.GivenName, u.FirstName),
			LastName:  pick(id.FamilyName, u.LastName),
			Role:      u.Role,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.GoogleLogin Update: %v", err)
			return user.TokenOutput{}, err
		}
	}

	if !u.IsActive {
		return user.TokenOutput{}, user.ErrInactive
	}

	out, err := uc.issueTokens(ctx, u)
	if err != nil {
		return user.TokenOutput{}, err
	}
	out.Created = created
	return out, nil
}

func changed(fromGoogle, stored string) bool {
	return fromGoogle != "" && fromGoogle != stored
}

func pick(fromGoogle, stored string) string {
	if fromGoogle != "" {
		return fromGoogle
	}
	return stored
}
