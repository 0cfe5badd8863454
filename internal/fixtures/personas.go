// Package fixtures seeds the store with the demo scenario: four named
// personas plus a randomized supporting cast, reproducible per seed.
package fixtures

import (
	"github.com/cabanahq/sandbox/internal/factory"
	"github.com/cabanahq/sandbox/internal/model"
)

// DefaultSeed is used when no seed is configured.
const DefaultSeed int64 = 42

// DemoPassword unlocks non-demo-domain accounts in the mock login flow.
const DemoPassword = "demo123"

// DemoDomain marks accounts whose password is not checked at all.
const DemoDomain = "@cabana.demo"

// Persona is a named, pre-configured demo user for guided walkthroughs.
type Persona struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	UserID      string     `json:"userId"`
	Avatar      string     `json:"avatar"`
	Role        model.Role `json:"role"`
}

// The four demo personas.
var (
	CreatorSophia = Persona{
		ID:          "persona-creator-sophia",
		Name:        "Sophia (Creator)",
		Description: "Established luxury lifestyle creator with 2.5K subscribers",
		UserID:      "user-sophia-creator",
		Avatar:      factory.AvatarURL("Sophia"),
		Role:        model.RoleCreator,
	}
	CreatorMarcus = Persona{
		ID:          "persona-creator-marcus",
		Name:        "Marcus (Creator)",
		Description: "Rising nightlife photographer and event host",
		UserID:      "user-marcus-creator",
		Avatar:      factory.AvatarURL("Marcus"),
		Role:        model.RoleCreator,
	}
	FanEmma = Persona{
		ID:          "persona-fan-emma",
		Name:        "Emma (Fan)",
		Description: "Active subscriber following 12 creators",
		UserID:      "user-emma-fan",
		Avatar:      factory.AvatarURL("Emma"),
		Role:        model.RoleFan,
	}
	AdminAlex = Persona{
		ID:          "persona-admin-alex",
		Name:        "Alex (Admin)",
		Description: "Platform administrator with full access",
		UserID:      "user-alex-admin",
		Avatar:      factory.AvatarURL("Alex"),
		Role:        model.RoleAdmin,
	}
)

// Personas lists the demo personas in walkthrough order.
func Personas() []Persona {
	return []Persona{CreatorSophia, CreatorMarcus, FanEmma, AdminAlex}
}

// Credentials pairs a persona with its demo login.
type Credentials struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Persona  Persona `json:"persona"`
}

// DemoCredentials lists the logins for the demo personas.
func DemoCredentials() []Credentials {
	return []Credentials{
		{Email: "sophia@cabana.demo", Password: DemoPassword, Persona: CreatorSophia},
		{Email: "marcus@cabana.demo", Password: DemoPassword, Persona: CreatorMarcus},
		{Email: "emma@cabana.demo", Password: DemoPassword, Persona: FanEmma},
		{Email: "alex@cabana.demo", Password: DemoPassword, Persona: AdminAlex},
	}
}
