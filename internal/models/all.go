package models

// All lists every table in migration order.
func All() []interface{} {
	return []interface{}{
		&User{}, &RefreshToken{},
		&Skill{}, &UserSkill{}, &SkillFollow{},
		&PortfolioItem{},
		&Connection{}, &Session{},
		&Conversation{}, &Message{},
		&Notification{}, &Review{}, &Report{},
		&SavedUser{}, &ProfileView{},
	}
}
