// Package seed holds the demo datasets the dashboard ships with. Community
// posts act as the fallback when durable storage is empty or unreadable;
// everything else is read-only display data.
package seed

import "farmguard/internal/models"

const (
	avatarAnil   = "https://ui-avatars.com/api/?name=Anil+Kumar&background=8b5cf6&color=fff"
	avatarPriya  = "https://ui-avatars.com/api/?name=Dr+Priya&background=ec4899&color=fff"
	avatarRajesh = "https://ui-avatars.com/api/?name=Rajesh+Patel&background=22c55e&color=fff"
	avatarSunita = "https://ui-avatars.com/api/?name=Sunita+Sharma&background=f59e0b&color=fff"
	avatarVikram = "https://ui-avatars.com/api/?name=Vikram+Singh&background=10b981&color=fff"

	userAnil   = "user-anil-kumar"
	userPriya  = "user-dr-priya"
	userRajesh = "user-rajesh-patel"
	userSunita = "user-sunita-sharma"
	userVikram = "user-vikram-singh"
)

// CommunityPosts returns a fresh copy of the seed threads so callers can
// normalize and mutate without touching the fixtures.
func CommunityPosts() []models.CommunityPost {
	return []models.CommunityPost{
		{
			ID:       "P01",
			AuthorID: userAnil,
			Author:   "Anil Kumar",
			Avatar:   avatarAnil,
			Date:     "2 days ago",
			Title:    "Best practices for managing IBD during monsoon?",
			Content:  "With the rainy season approaching, I am worried about IBD. What extra precautions are you all taking? Last year was tough.",
			Views:    156,
			Likes:    22,
			Dislikes: 1,
			Comments: []models.Comment{
				{ID: "C01-1", AuthorID: userPriya, Author: "Dr. Priya", Avatar: avatarPriya, Content: "Good question, Anil. Ensure water sources are clean and not contaminated by runoff. Also, consider adding electrolytes to their water to reduce stress.", Likes: 10},
				{ID: "C01-2", AuthorID: userRajesh, Author: "Rajesh Patel", Avatar: avatarRajesh, Content: "I double my usual amount of disinfectant in footbaths during monsoon. It seems to help.", Likes: 5},
			},
		},
		{
			ID:       "P02",
			AuthorID: userSunita,
			Author:   "Sunita Sharma",
			Avatar:   avatarSunita,
			Date:     "5 days ago",
			Title:    "Has anyone tried the new organic feed from AgroFeeds?",
			Content:  "I saw an ad for a new organic poultry feed that claims to boost immunity. Has anyone used it and seen results? Wondering if it is worth the extra cost.",
			Views:    98,
			Likes:    15,
			Dislikes: 3,
			Comments: []models.Comment{
				{ID: "C02-1", AuthorID: userVikram, Author: "Vikram Singh", Avatar: avatarVikram, Content: "I have been using it for a month. Mortality rate seems slightly lower, but it is too early to say for sure. The feed cost is about 15% higher.", Likes: 7, Dislikes: 1},
			},
		},
		{
			ID:       "P03",
			AuthorID: userRajesh,
			Author:   "Rajesh Patel",
			Avatar:   avatarRajesh,
			Date:     "1 week ago",
			Title:    "Dealing with sudden drop in egg production.",
			Content:  "My flock's egg production suddenly dropped by 15% this week. No other visible symptoms. Any ideas what could be the cause before I call the vet?",
			Views:    234,
			Likes:    31,
			Comments: []models.Comment{
				{ID: "C03-1", AuthorID: userSunita, Author: "Sunita Sharma", Avatar: avatarSunita, Content: "Check for mites. Sometimes they are hard to spot and can cause stress, leading to a drop in production.", Likes: 12},
				{ID: "C03-2", AuthorID: userAnil, Author: "Anil Kumar", Avatar: avatarAnil, Content: "Could be a lighting issue as well. Are they getting enough light consistently?", Likes: 4},
			},
		},
	}
}

var FarmStats = models.FarmStats{
	AnimalCount:      1250,
	MortalityRate:    2.5,
	FeedUsage:        450,
	BiosecurityScore: 92,
}

var Reports = []models.Report{
	{ID: "R001", Date: "2023-10-29", AnimalCount: 1245, FeedUsage: 455, Symptoms: "Minor coughing observed in 2 pigs.", Temperature: 38.5, Status: models.ReportReviewed, SubmittedBy: "John Farmer"},
	{ID: "R002", Date: "2023-10-28", AnimalCount: 1250, FeedUsage: 450, Symptoms: "No visible symptoms.", Temperature: 38.2, Status: models.ReportReviewed, SubmittedBy: "John Farmer"},
}

var Alerts = []models.Alert{
	{ID: "A001", TitleKey: "alertTitleInactivePoultry", DescriptionKey: "alertDescInactivePoultry", Severity: models.SeverityHigh, Date: "2023-10-29", TypeKey: "aiCamera"},
	{ID: "A002", TitleKey: "alertTitleIbdHotspot", DescriptionKey: "alertDescIbdHotspot", Severity: models.SeverityCritical, Date: "2023-10-29", TypeKey: "prediction"},
	{ID: "A003", TitleKey: "alertTitleAvianFlu", DescriptionKey: "alertDescAvianFlu", Severity: models.SeverityCritical, Date: "2023-10-28", TypeKey: "outbreak"},
	{ID: "A004", TitleKey: "alertTitleTempSpike", DescriptionKey: "alertDescTempSpike", Severity: models.SeverityHigh, Date: "2023-10-28", TypeKey: "system"},
	{ID: "A005", TitleKey: "alertTitleProtocolReminder", DescriptionKey: "alertDescProtocolReminder", Severity: models.SeverityMedium, Date: "2023-10-25", TypeKey: "system"},
}

var FarmDataTrends = []models.FarmDataTrend{
	{NameKey: "monthJan", Mortality: 4, Feed: 400, Temp: 38.5},
	{NameKey: "monthFeb", Mortality: 3, Feed: 420, Temp: 38.6},
	{NameKey: "monthMar", Mortality: 5, Feed: 410, Temp: 38.4},
	{NameKey: "monthApr", Mortality: 4, Feed: 430, Temp: 38.7},
	{NameKey: "monthMay", Mortality: 6, Feed: 400, Temp: 38.9},
	{NameKey: "monthJun", Mortality: 5, Feed: 440, Temp: 38.8},
}

var BiosecurityReports = []models.BiosecurityReport{
	{ID: "BSR001", BatchID: "PIG-BATCH-012", Date: "2023-10-28", ComplianceScore: 95, StatusKey: "complete"},
	{ID: "BSR002", BatchID: "POULTRY-BATCH-034", Date: "2023-10-21", ComplianceScore: 88, StatusKey: "complete"},
	{ID: "BSR003", BatchID: "PIG-BATCH-011", Date: "2023-10-14", ComplianceScore: 91, StatusKey: "complete"},
	{ID: "BSR004", BatchID: "POULTRY-BATCH-035", Date: "2023-11-01", ComplianceScore: 0, StatusKey: "inProgress"},
}

var ChecklistItems = []models.ChecklistItem{
	{ID: "C01", CategoryKey: "entryProtocols", TaskKey: "taskFootbaths"},
	{ID: "C02", CategoryKey: "entryProtocols", TaskKey: "taskVisitorLog"},
	{ID: "C03", CategoryKey: "entryProtocols", TaskKey: "taskVehicleDisinfection"},
	{ID: "C04", CategoryKey: "feedAndWater", TaskKey: "taskSecureFeed"},
	{ID: "C05", CategoryKey: "feedAndWater", TaskKey: "taskFlushWater"},
	{ID: "C06", CategoryKey: "pestControl", TaskKey: "taskBaitStations"},
	{ID: "C07", CategoryKey: "pestControl", TaskKey: "taskNoRodentSigns"},
	{ID: "C08", CategoryKey: "cleaning", TaskKey: "taskPensCleaned"},
}

var Products = []models.ProductVerification{
	{ID: "PROD12345", FarmID: "FARM001", ProductName: "Organic Chicken Breast", BatchDate: "2023-10-25", Status: models.VerifySafe},
	{ID: "PROD67890", FarmID: "FARM003", ProductName: "Free-Range Eggs", BatchDate: "2023-10-22", Status: models.VerifyWarning},
	{ID: "PROD11223", FarmID: "FARM002", ProductName: "Pork Sausages", BatchDate: "2023-10-28", Status: models.VerifySafe},
}

var FarmsCompliance = []models.FarmCompliance{
	{ID: "FARM001", Name: "Green Valley Farms", Region: "Punjab", ComplianceScore: 95, LastInspection: "2023-10-15"},
	{ID: "FARM002", Name: "Sunrise Poultry", Region: "Haryana", ComplianceScore: 88, LastInspection: "2023-10-12"},
	{ID: "FARM003", Name: "Happy Pigs Co.", Region: "Rajasthan", ComplianceScore: 72, LastInspection: "2023-09-28"},
	{ID: "FARM004", Name: "Organic Feathers", Region: "Punjab", ComplianceScore: 98, LastInspection: "2023-10-20"},
	{ID: "FARM005", Name: "Deccan Agri", Region: "Telangana", ComplianceScore: 85, LastInspection: "2023-10-18"},
	{ID: "FARM006", Name: "Bengal Livestock", Region: "West Bengal", ComplianceScore: 79, LastInspection: "2023-10-05"},
	{ID: "FARM007", Name: "Godavari Farms", Region: "Telangana", ComplianceScore: 91, LastInspection: "2023-10-22"},
	{ID: "FARM008", Name: "Mahi Farms", Region: "Rajasthan", ComplianceScore: 82, LastInspection: "2023-10-11"},
}
