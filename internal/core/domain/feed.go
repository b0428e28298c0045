package domain

import "strings"

// Source tags where a feed's data came from.
type Source string

const (
	// SourceLive marks data fetched from the RunPro API.
	SourceLive Source = "live"
	// SourceSample marks the hardcoded fallback set served when the
	// upstream fetch failed. The dashboard shows its advisory banner off
	// this tag.
	SourceSample Source = "sample"
)

// Feed carries one dashboard data set together with its source tag, so
// callers branch on an explicit discriminator instead of probing a success
// field.
type Feed[T any] struct {
	Source Source
	Data   T
}

// Live wraps upstream data.
func Live[T any](data T) Feed[T] { return Feed[T]{Source: SourceLive, Data: data} }

// Sample wraps fallback data.
func Sample[T any](data T) Feed[T] { return Feed[T]{Source: SourceSample, Data: data} }

// Fallback reports whether the feed holds sample data.
func (f Feed[T]) Fallback() bool { return f.Source == SourceSample }

// ServiceRequest is one row of the service-request table.
type ServiceRequest struct {
	RequestID    string `json:"requestId"`
	CustomerName string `json:"customerName"`
	ServiceType  string `json:"serviceType"`
	Status       string `json:"status"`
	DueDate      string `json:"dueDate"`
}

// DeliveryDetail is one row of the delivery-details table.
type DeliveryDetail struct {
	OrderID           string `json:"orderId"`
	DeliveryType      string `json:"deliveryType"`
	PickupDestination string `json:"pickupDestination"`
	Date              string `json:"date"`
	EstimatedTime     string `json:"estimatedTime"`
	RiderInCharge     string `json:"riderInCharge"`
	OrderBy           string `json:"orderBy"`
	DeliveredTo       string `json:"deliveredTo"`
}

// ActiveDelivery is one marker on the delivery map.
type ActiveDelivery struct {
	ID          int        `json:"id"`
	OrderID     string     `json:"orderId"`
	Location    [2]float64 `json:"location"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Status      string     `json:"status"`
	Rider       string     `json:"rider"`
	ServiceType string     `json:"serviceType"`
	LastUpdated string     `json:"lastUpdated,omitempty"`
}

// ServiceProvider is one row of the provider roster.
type ServiceProvider struct {
	ID       string `json:"id"`
	AgentID  string `json:"agentId"`
	Name     string `json:"name"`
	Service  string `json:"service"`
	Status   string `json:"status"`
	WorkRate int    `json:"workRate"`
	Location string `json:"location"`
}

// PotentialProvider is one pending provider application.
type PotentialProvider struct {
	Name       string `json:"name"`
	AppliedFor string `json:"appliedFor"`
	Experience string `json:"experience"`
	Location   string `json:"location"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Status     string `json:"status"`
}

// Payment is one row of the recent-payments table.
type Payment struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Service string  `json:"service"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
}

// SupportMessage is one message inside a support conversation.
type SupportMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
	Time   string `json:"time"`
	Name   string `json:"name,omitempty"`
}

// SupportCase is one customer-support conversation.
type SupportCase struct {
	ID       string           `json:"id"`
	Channel  string           `json:"channel"`
	Time     string           `json:"time"`
	Preview  string           `json:"preview"`
	Messages []SupportMessage `json:"messages"`
}

// DashboardStats is the headline counter block of the overview.
type DashboardStats struct {
	OpenCases       int     `json:"openCases"`
	PriorityQueue   int     `json:"priorityQueue"`
	PendingFollowUp int     `json:"pendingFollowUp"`
	TotalUsers      int     `json:"totalUsers"`
	TotalAgents     int     `json:"totalAgents"`
	TotalOrders     int     `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
}

// PeriodStats is the per-period slice of the overview.
type PeriodStats struct {
	NewUsers  int     `json:"newUsers"`
	NewAgents int     `json:"newAgents"`
	Orders    int     `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// MonthlyPoint is one bar of the monthly case chart.
type MonthlyPoint struct {
	Month     string `json:"month"`
	Customers int    `json:"customers"`
	Service   int    `json:"service"`
	Total     int    `json:"total"`
}

// ResponseBucket is one slice of the response-time distribution.
type ResponseBucket struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Channel is one service channel with its open-case count.
type Channel struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RecentCase is one entry of the overview's recent-cases list.
type RecentCase struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Title   string `json:"title"`
	Channel string `json:"channel"`
	Status  string `json:"status"`
}

// DashboardOverview is the full overview document.
type DashboardOverview struct {
	Stats        DashboardStats   `json:"stats"`
	PeriodStats  PeriodStats      `json:"periodStats"`
	MonthlyData  []MonthlyPoint   `json:"monthlyData"`
	ResponseData []ResponseBucket `json:"responseData"`
	Channels     []Channel        `json:"channels"`
	RecentCases  []RecentCase     `json:"recentCases"`
}

// StatusLabel maps a backend status string to the label the dashboard
// displays. Unknown statuses pass through unchanged.
func StatusLabel(status string) string {
	switch strings.ToLower(status) {
	case "success":
		return "Completed"
	case "active", "accepted":
		return "In Progress"
	case "pending":
		return "Pending"
	case "cancelled":
		return "Cancelled"
	case "failed":
		return "Failed"
	default:
		return status
	}
}
