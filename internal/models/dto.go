package models

type CreateBrandProfileRequest struct {
	Name        string            `json:"name"`
	Username    string            `json:"username"`
	Industry    string            `json:"industry"`
	Location    string            `json:"location"`
	Website     string            `json:"website"`
	SocialLinks map[string]string `json:"socialLinks"`
}

type UpdateBrandProfileRequest struct {
	Name        string            `json:"name,omitempty"`
	Industry    string            `json:"industry,omitempty"`
	Location    string            `json:"location,omitempty"`
	Website     string            `json:"website,omitempty"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
	Status      ProfileStatus     `json:"status,omitempty"`
}

// UpsertPreferenceRequest replaces the brand's preference document wholesale;
// there is no partial preference update.
type UpsertPreferenceRequest struct {
	Category           string           `json:"category"`
	BrandValues        []string         `json:"brandValues"`
	Demographics       Demographics     `json:"demographics"`
	Budget             *BudgetRange     `json:"budget"`
	Platforms          []string         `json:"platforms"`
	Subcategories      []string         `json:"subcategories"`
	Expertise          []string         `json:"expertise"`
	ContentTypes       []string         `json:"contentTypes"`
	EventTypes         []string         `json:"eventTypes"`
	TargetAudience     *AudienceProfile `json:"targetAudience"`
	TravelWillingness  string           `json:"travelWillingness"`
	MinExperienceYears int              `json:"minExperienceYears"`
}

// OnboardingStepRequest carries the payload for one onboarding step; only
// the section matching the step being saved is read.
type OnboardingStepRequest struct {
	PersonalInfo     *CreatorPersonalInfo `json:"personalInfo,omitempty"`
	ProfessionalInfo *ProfessionalInfo    `json:"professionalInfo,omitempty"`
	DescriptionFaq   *DescriptionFaq      `json:"descriptionFaq,omitempty"`
	SocialProfiles   []SocialProfile      `json:"socialProfiles,omitempty"`
	Pricing          *Pricing             `json:"pricing,omitempty"`
	Gallery          []GalleryItem        `json:"gallery,omitempty"`
}

type CreateOrderRequest struct {
	CreatorUserID string      `json:"creatorUserId"`
	PackageType   PackageType `json:"packageType"`
	Currency      string      `json:"currency"`
	Requirements  string      `json:"requirements"`
}

type UpdateOrderStatusRequest struct {
	Status       OrderStatus `json:"status"`
	CancelReason string      `json:"cancelReason,omitempty"`
}

type CreatePaymentRequest struct {
	OrderID  string  `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"`
}

type CreateQuoteRequest struct {
	CreatorUserID  string               `json:"creatorUserId"`
	Description    string               `json:"description"`
	Budget         float64              `json:"budget"`
	Deadline       int64                `json:"deadline"`
	IsPrivateEvent bool                 `json:"isPrivateEvent"`
	PrivateEvent   *PrivateEventDetails `json:"privateEvent"`
}

type RespondQuoteRequest struct {
	Status       QuoteStatus `json:"status"`
	ResponseNote string      `json:"responseNote"`
}

// Match is one scored creator in a matching response, ordered by descending
// score. Reasons carries one human-readable string per satisfied predicate.
type Match struct {
	CreatorID string          `json:"creatorId"`
	Profile   *CreatorProfile `json:"profile"`
	Metrics   *CreatorMetrics `json:"metrics,omitempty"`
	Score     int             `json:"score"`
	Reasons   []string        `json:"reasons"`
}

type MatchResponse struct {
	Matches []Match `json:"matches"`
}
