package domain

import "context"

// DashboardSummary feeds the admin landing page counters.
type DashboardSummary struct {
	ProjectCount            int64            `json:"project_count"`
	MessageCount            int64            `json:"message_count"`
	UnreadMessageCount      int64            `json:"unread_message_count"`
	SkillCategoryCount      int64            `json:"skill_category_count"`
	UnreadNotificationCount int64            `json:"unread_notification_count"`
	RecentMessages          []ContactMessage `json:"recent_messages"`
}

type DashboardUsecase interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
