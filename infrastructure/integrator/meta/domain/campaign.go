package domain

import "encoding/json"

// Campaign é o objeto bruto de /act_<id>/campaigns. Os orçamentos chegam como
// strings na menor subunidade da moeda (centavos).
type Campaign struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	Objective      string  `json:"objective"`
	BuyingType     string  `json:"buying_type"`
	StartTime      *string `json:"start_time"`
	StopTime       *string `json:"stop_time"`
	DailyBudget    *string `json:"daily_budget"`
	LifetimeBudget *string `json:"lifetime_budget"`
	SpendCap       *string `json:"spend_cap"`
}

type AdSet struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Status         string          `json:"status"`
	StartTime      *string         `json:"start_time"`
	EndTime        *string         `json:"end_time"`
	DailyBudget    *string         `json:"daily_budget"`
	LifetimeBudget *string         `json:"lifetime_budget"`
	BillingEvent   *string         `json:"billing_event"`
	Targeting      json.RawMessage `json:"targeting"`
}

type Ad struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	Creative *Creative `json:"creative"`
}

type Creative struct {
	ID               string  `json:"id"`
	ThumbnailURL     *string `json:"thumbnail_url"`
	Body             *string `json:"body"`
	Title            *string `json:"title"`
	CallToActionType *string `json:"call_to_action_type"`
}
