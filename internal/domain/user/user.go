package user

import (
	"fmt"
	"time"

	"sips/internal/shared/authorization"
)

// SubscriptionTier is the billing tier a user sits on. Free users only get
// tokens through purchases and bonuses.
type SubscriptionTier string

const (
	TierFree       SubscriptionTier = "free"
	TierStarter    SubscriptionTier = "starter"
	TierPro        SubscriptionTier = "pro"
	TierEnterprise SubscriptionTier = "enterprise"
)

func (t SubscriptionTier) String() string {
	return string(t)
}

func (t SubscriptionTier) IsValid() bool {
	switch t {
	case TierFree, TierStarter, TierPro, TierEnterprise:
		return true
	}
	return false
}

type User struct {
	id                   uint
	openID               string
	name                 string
	email                string
	loginMethod          string
	role                 authorization.UserRole
	tokens               int
	subscriptionTier     SubscriptionTier
	stripeCustomerID     *string
	stripeSubscriptionID *string
	tasteProfile         map[string]interface{}
	dietaryPrefs         []string
	allergyFlags         []string
	accessibilityMode    string
	createdAt            time.Time
	updatedAt            time.Time
	lastSignedIn         time.Time
}

func NewUser(openID, name, email, loginMethod string) (*User, error) {
	if len(openID) == 0 {
		return nil, fmt.Errorf("open ID is required")
	}
	if len(openID) > 64 {
		return nil, fmt.Errorf("open ID exceeds maximum length of 64 characters")
	}
	if len(email) > 320 {
		return nil, fmt.Errorf("email exceeds maximum length of 320 characters")
	}

	now := time.Now()

	return &User{
		openID:            openID,
		name:              name,
		email:             email,
		loginMethod:       loginMethod,
		role:              authorization.RoleUser,
		tokens:            0,
		subscriptionTier:  TierFree,
		tasteProfile:      make(map[string]interface{}),
		dietaryPrefs:      []string{},
		allergyFlags:      []string{},
		accessibilityMode: "default",
		createdAt:         now,
		updatedAt:         now,
		lastSignedIn:      now,
	}, nil
}

func ReconstructUser(
	id uint,
	openID string,
	name string,
	email string,
	loginMethod string,
	role authorization.UserRole,
	tokens int,
	subscriptionTier SubscriptionTier,
	stripeCustomerID *string,
	stripeSubscriptionID *string,
	tasteProfile map[string]interface{},
	dietaryPrefs []string,
	allergyFlags []string,
	accessibilityMode string,
	createdAt, updatedAt, lastSignedIn time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(openID) == 0 {
		return nil, fmt.Errorf("open ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}
	if !subscriptionTier.IsValid() {
		return nil, fmt.Errorf("invalid subscription tier")
	}
	if tokens < 0 {
		return nil, fmt.Errorf("token balance cannot be negative")
	}

	if tasteProfile == nil {
		tasteProfile = make(map[string]interface{})
	}
	if dietaryPrefs == nil {
		dietaryPrefs = []string{}
	}
	if allergyFlags == nil {
		allergyFlags = []string{}
	}

	return &User{
		id:                   id,
		openID:               openID,
		name:                 name,
		email:                email,
		loginMethod:          loginMethod,
		role:                 role,
		tokens:               tokens,
		subscriptionTier:     subscriptionTier,
		stripeCustomerID:     stripeCustomerID,
		stripeSubscriptionID: stripeSubscriptionID,
		tasteProfile:         tasteProfile,
		dietaryPrefs:         dietaryPrefs,
		allergyFlags:         allergyFlags,
		accessibilityMode:    accessibilityMode,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
		lastSignedIn:         lastSignedIn,
	}, nil
}

func (u *User) ID() uint { return u.id }

func (u *User) OpenID() string { return u.openID }

func (u *User) Name() string { return u.name }

func (u *User) Email() string { return u.email }

func (u *User) LoginMethod() string { return u.loginMethod }

func (u *User) Role() authorization.UserRole { return u.role }

func (u *User) Tokens() int { return u.tokens }

func (u *User) SubscriptionTier() SubscriptionTier { return u.subscriptionTier }

func (u *User) StripeCustomerID() *string { return u.stripeCustomerID }

func (u *User) StripeSubscriptionID() *string { return u.stripeSubscriptionID }

func (u *User) AccessibilityMode() string { return u.accessibilityMode }

func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) LastSignedIn() time.Time { return u.lastSignedIn }

func (u *User) TasteProfile() map[string]interface{} {
	profileCopy := make(map[string]interface{}, len(u.tasteProfile))
	for k, v := range u.tasteProfile {
		profileCopy[k] = v
	}
	return profileCopy
}

func (u *User) DietaryPrefs() []string {
	prefsCopy := make([]string, len(u.dietaryPrefs))
	copy(prefsCopy, u.dietaryPrefs)
	return prefsCopy
}

func (u *User) AllergyFlags() []string {
	flagsCopy := make([]string, len(u.allergyFlags))
	copy(flagsCopy, u.allergyFlags)
	return flagsCopy
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// PromoteToAdmin grants the admin role.
func (u *User) PromoteToAdmin() {
	u.role = authorization.RoleAdmin
	u.updatedAt = time.Now()
}

// RecordSignIn refreshes the last sign-in timestamp and profile data from
// the identity provider.
func (u *User) RecordSignIn(name, email string) {
	if name != "" {
		u.name = name
	}
	if email != "" {
		u.email = email
	}
	now := time.Now()
	u.lastSignedIn = now
	u.updatedAt = now
}

// UpdatePreferences replaces the taste and dietary preference data.
func (u *User) UpdatePreferences(tasteProfile map[string]interface{}, dietaryPrefs, allergyFlags []string, accessibilityMode string) error {
	if tasteProfile != nil {
		u.tasteProfile = tasteProfile
	}
	if dietaryPrefs != nil {
		u.dietaryPrefs = dietaryPrefs
	}
	if allergyFlags != nil {
		u.allergyFlags = allergyFlags
	}
	if accessibilityMode != "" {
		u.accessibilityMode = accessibilityMode
	}
	u.updatedAt = time.Now()
	return nil
}

// ActivateSubscription moves the user onto a paid tier.
func (u *User) ActivateSubscription(tier SubscriptionTier, stripeSubscriptionID string) error {
	if !tier.IsValid() || tier == TierFree {
		return fmt.Errorf("invalid subscription tier: %s", tier)
	}
	if len(stripeSubscriptionID) == 0 {
		return fmt.Errorf("subscription ID is required")
	}

	u.subscriptionTier = tier
	u.stripeSubscriptionID = &stripeSubscriptionID
	u.updatedAt = time.Now()
	return nil
}

// CancelSubscription drops the user back to the free tier. Tokens already
// granted stay on the ledger.
func (u *User) CancelSubscription() {
	u.subscriptionTier = TierFree
	u.stripeSubscriptionID = nil
	u.updatedAt = time.Now()
}

// HasActiveSubscription reports whether the user is on a paid tier.
func (u *User) HasActiveSubscription() bool {
	return u.subscriptionTier != TierFree
}
