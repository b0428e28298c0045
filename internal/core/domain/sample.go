package domain

// Fallback data sets served when the RunPro API cannot be reached. The
// records mirror what the backend returns so the dashboard stays fully
// populated; every accessor returns a fresh slice so callers may mutate
// their copy.

// SampleServiceRequests returns the fallback service-request table.
func SampleServiceRequests() []ServiceRequest {
	return []ServiceRequest{
		{RequestID: "IP-001", CustomerName: "Adejabola Ayomide", ServiceType: "Babysitting", Status: "In progress", DueDate: "15/06/2025"},
		{RequestID: "IP-002", CustomerName: "Chinedu Okoro", ServiceType: "Plumbing", Status: "Completed", DueDate: "10/06/2025"},
		{RequestID: "IP-003", CustomerName: "Funke Adebayo", ServiceType: "Cleaning", Status: "Pending", DueDate: "20/06/2025"},
	}
}

// SampleDeliveryDetails returns the fallback delivery-details table.
func SampleDeliveryDetails() []DeliveryDetail {
	return []DeliveryDetail{
		{
			OrderID:           "RP-267",
			DeliveryType:      "Errand service",
			PickupDestination: "From: Jeobel, Atakuko To: Quanna Micaline, Lekki Teligate",
			Date:              "09/10/25",
			EstimatedTime:     "2 Hours",
			RiderInCharge:     "Samuel Biyomi",
			OrderBy:           "Mariam Hassan",
			DeliveredTo:       "Mariam Hassan",
		},
		{
			OrderID:           "RP-268",
			DeliveryType:      "Dispatch delivery",
			PickupDestination: "From: 23. Sukenu Qie Road Casso To: Quanna Micaline, Lekki Teligate",
			Date:              "09/10/25",
			EstimatedTime:     "2 Hours",
			RiderInCharge:     "Samuel Biyomi",
			OrderBy:           "Mariam Hassan",
			DeliveredTo:       "Chakouma Berry",
		},
	}
}

// SampleActiveDeliveries returns the fallback delivery-map markers, centred
// on Lagos.
func SampleActiveDeliveries() []ActiveDelivery {
	return []ActiveDelivery{
		{
			ID:          1,
			OrderID:     "DL-001",
			Location:    [2]float64{6.5244, 3.3792},
			Name:        "Victoria Island Delivery",
			Address:     "Victoria Island, Lagos",
			Status:      "In Transit",
			Rider:       "Samuel Biyomi",
			ServiceType: "Errand Service",
		},
		{
			ID:          2,
			OrderID:     "DL-002",
			Location:    [2]float64{6.5355, 3.3954},
			Name:        "Ikoyi Package",
			Address:     "Ikoyi, Lagos",
			Status:      "Pending",
			Rider:       "Adeola Johnson",
			ServiceType: "Delivery",
		},
		{
			ID:          3,
			OrderID:     "DL-003",
			Location:    [2]float64{6.528, 3.385},
			Name:        "UNILAG Errand",
			Address:     "University of Lagos",
			Status:      "Delivered",
			Rider:       "Chinedu Okoro",
			ServiceType: "Errand Service",
		},
	}
}

// SampleServiceProviders returns the fallback provider roster.
func SampleServiceProviders() []ServiceProvider {
	return []ServiceProvider{
		{ID: "890221", AgentID: "SP890221", Name: "Oladejo Nehemiah", Service: "Plumber", Status: "Active", WorkRate: 89, Location: "No 16, Complex 2, Tejuosho Market, Yaba, Lagos"},
		{ID: "890222", AgentID: "SP890222", Name: "Adebola Johnson", Service: "Electrician", Status: "Active", WorkRate: 92, Location: "25, Allen Avenue, Ikeja, Lagos"},
		{ID: "890223", AgentID: "SP890223", Name: "Chinedu Okoro", Service: "Cleaner", Status: "Active", WorkRate: 78, Location: "14, Awolowo Road, Ikoyi, Lagos"},
	}
}

// SamplePotentialProviders returns the fallback provider applications.
func SamplePotentialProviders() []PotentialProvider {
	return []PotentialProvider{
		{Name: "Ajayi Suleiman", AppliedFor: "Mechanic", Experience: "6 years", Location: "Idi-araba Arepo", Phone: "+234-569800345", Email: "suleyi890@gmail.com", Status: "Waitlisted"},
		{Name: "Fatima Bello", AppliedFor: "Beautician", Experience: "4 years", Location: "Victoria Island, Lagos", Phone: "+234-701234567", Email: "fatima.bello@email.com", Status: "Reviewing"},
		{Name: "Musa Abdullahi", AppliedFor: "Driver", Experience: "8 years", Location: "Agege, Lagos", Phone: "+234-812345678", Email: "musa.abdullahi@email.com", Status: "Pending"},
	}
}

// SamplePayments returns the fallback recent-payments table.
func SamplePayments() []Payment {
	return []Payment{
		{ID: "1", Name: "Thompson Jacinta", Service: "Lawn nail technician", Amount: 23000.00, Status: "success"},
		{ID: "2", Name: "Musa Bello", Service: "Plumbing repair", Amount: 15500.00, Status: "success"},
		{ID: "3", Name: "Grace Okafor", Service: "Home cleaning", Amount: 12000.00, Status: "pending"},
	}
}

// SampleSupportCases returns the fallback support conversations.
func SampleSupportCases() []SupportCase {
	const longPreview = "I have transferred the money for the laundry service today but just realized that I would not be at home tomorrow. Would it be possible for the laundry service provider to come pick up my cloth this evening or the day after tomorrow as it can not be possible tomorrow. If not, I might as well go for a refund."
	const shortPreview = "I have transferred the money for the laundry service today but just realized that I would not be at home tomorrow."

	return []SupportCase{
		{
			ID: "CAS-001", Channel: "Email", Time: "30 minutes ago", Preview: longPreview,
			Messages: []SupportMessage{
				{Sender: "customer", Text: longPreview, Time: "Monday 10:54"},
				{Sender: "agent", Text: "Sure, you can pay to it but the service that want to observe a back so that I can assign a service provider.", Time: "Monday 10:54", Name: "Mr Abubakar"},
				{Sender: "customer", Text: "Alost, why can't you do it yourself? Have the last responsible in a while, would you give me a reply?", Time: "Monday 11:20"},
			},
		},
		{
			ID: "CAS-002", Channel: "Whatsapp", Time: "30 minutes ago", Preview: shortPreview,
			Messages: []SupportMessage{
				{Sender: "customer", Text: shortPreview, Time: "Monday 10:54"},
				{Sender: "agent", Text: "Sorry, I have diarrhea as a result of food poisoning. Had to rush to the pharmacy.", Time: "Monday 11:54", Name: "Rose Chukwu"},
			},
		},
		{
			ID: "CAS-003", Channel: "Twitter", Time: "30 minutes ago", Preview: shortPreview,
			Messages: []SupportMessage{
				{Sender: "customer", Text: shortPreview, Time: "Monday 10:54"},
			},
		},
		{
			ID: "CAS-004", Channel: "Instagram", Time: "30 minutes ago", Preview: shortPreview,
			Messages: []SupportMessage{
				{Sender: "customer", Text: longPreview, Time: "Monday 10:54"},
				{Sender: "agent", Text: "You could put status anyone before you go. Put status that in the form of a video that states that you have an unscheduled payment.", Time: "Monday 11:20"},
			},
		},
		{
			ID: "CAS-005", Channel: "Twitter", Time: "30 minutes ago", Preview: shortPreview,
			Messages: []SupportMessage{
				{Sender: "customer", Text: longPreview, Time: "Monday 10:54"},
				{Sender: "agent", Text: "Sorry, I have diarrhea as a result of food poisoning. Had to rush to the pharmacy.", Time: "Monday 11:54", Name: "Rose Chukwu"},
			},
		},
		{
			ID: "CAS-006", Channel: "Twitter", Time: "30 minutes ago", Preview: shortPreview,
			Messages: []SupportMessage{
				{Sender: "customer", Text: longPreview, Time: "Monday 10:54"},
				{Sender: "agent", Text: "And, why can't you do it yourself? Rose has not responded in a while, would you keep the customer waiting?", Time: "Monday 11:20"},
			},
		},
	}
}

// SampleDashboardOverview returns the fallback overview document.
func SampleDashboardOverview() DashboardOverview {
	return DashboardOverview{
		Stats: DashboardStats{
			OpenCases:       67,
			PriorityQueue:   45,
			PendingFollowUp: 12,
			TotalUsers:      234,
			TotalAgents:     45,
			TotalOrders:     189,
			TotalRevenue:    1250000,
		},
		PeriodStats: PeriodStats{NewUsers: 23, NewAgents: 5, Orders: 45, Revenue: 250000},
		MonthlyData: []MonthlyPoint{
			{Month: "Jan", Customers: 85, Service: 15, Total: 100},
			{Month: "Feb", Customers: 65, Service: 10, Total: 75},
			{Month: "Mar", Customers: 15, Service: 5, Total: 20},
			{Month: "Apr", Customers: 95, Service: 5, Total: 100},
			{Month: "May", Customers: 45, Service: 10, Total: 55},
			{Month: "Jun", Customers: 55, Service: 8, Total: 63},
			{Month: "July", Customers: 70, Service: 12, Total: 82},
			{Month: "Aug", Customers: 85, Service: 7, Total: 92},
			{Month: "Sept", Customers: 50, Service: 15, Total: 65},
			{Month: "Oct", Customers: 75, Service: 5, Total: 80},
			{Month: "Nov", Customers: 30, Service: 8, Total: 38},
			{Month: "Dec", Customers: 25, Service: 10, Total: 35},
		},
		ResponseData: []ResponseBucket{
			{Label: "<1 hour", Value: 35},
			{Label: "<2 hours", Value: 25},
			{Label: "2-4 hours", Value: 15},
			{Label: "4-8 hours", Value: 5},
			{Label: "8-16 hours", Value: 15},
			{Label: ">24 hours", Value: 5},
		},
		Channels: []Channel{
			{Name: "Laundry", Count: 16},
			{Name: "Cleaning", Count: 13},
			{Name: "Maintenance", Count: 32},
			{Name: "Delivery", Count: 11},
			{Name: "Beauty", Count: 8},
			{Name: "Other", Count: 20},
		},
		RecentCases: []RecentCase{
			{ID: "000221", Name: "Samuel Akinloye", Title: "Laundry service request", Channel: "Laundry", Status: "Not Responded"},
			{ID: "000222", Name: "Bushanmi Joshua", Title: "Cleaning service request", Channel: "Cleaning", Status: "Responded"},
			{ID: "000223", Name: "Constance Moyo", Title: "Maintenance service request", Channel: "Maintenance", Status: "Responded"},
			{ID: "000224", Name: "Oladejo Nehemiah", Title: "Delivery service request", Channel: "Delivery", Status: "Not Responded"},
			{ID: "000225", Name: "Oladejo Njoku", Title: "Beauty service request", Channel: "Beauty", Status: "Not Responded"},
			{ID: "000226", Name: "Samuel Olakunle", Title: "General service request", Channel: "Other", Status: "Not Responded"},
		},
	}
}
