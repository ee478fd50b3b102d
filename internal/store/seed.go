package store

import (
	"fmt"
	"time"

	"github.com/Ahmedshelfun/KuopioMosque/internal/models"
)

// Seed inserts fixture data so a freshly provisioned backend serves a usable
// site with zero configuration. Every insert is guarded by an existence
// probe, so seeding the same backend twice is a no-op.
func Seed(s Store) error {
	if err := seedUser(s); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	if err := seedPrayerTimes(s); err != nil {
		return fmt.Errorf("seed prayer times: %w", err)
	}
	if err := seedEvents(s); err != nil {
		return fmt.Errorf("seed events: %w", err)
	}
	if err := seedNews(s); err != nil {
		return fmt.Errorf("seed news: %w", err)
	}
	return nil
}

func seedUser(s Store) error {
	existing, err := s.GetUserByUsername("admin")
	if err != nil || existing != nil {
		return err
	}
	_, err = s.CreateUser(models.InsertUser{
		Username: "admin",
		Password: "password", // placeholder account, no auth layer yet
		Name:     str("Admin User"),
		Email:    str("admin@example.com"),
		Role:     str("admin"),
	})
	return err
}

func seedPrayerTimes(s Store) error {
	today := time.Now().Format("2006-01-02")
	existing, err := s.GetPrayerTimesByDate(today)
	if err != nil || existing != nil {
		return err
	}
	// Summer schedule for Kuopio, Organisations Islamiques de France method.
	_, err = s.CreatePrayerTime(models.InsertPrayerTime{
		Date:          today,
		FajrBegins:    "03:15",
		FajrIqamah:    str("03:45"),
		Sunrise:       "04:30",
		DhuhrBegins:   "13:15",
		DhuhrIqamah:   str("13:30"),
		AsrBegins:     "17:45",
		AsrIqamah:     str("18:00"),
		MaghribBegins: "22:10",
		MaghribIqamah: str("22:20"),
		IshaBegins:    "23:45",
		IshaIqamah:    str("00:00"),
	})
	return err
}

func seedEvents(s Store) error {
	featured, err := s.GetFeaturedEvent()
	if err != nil {
		return err
	}
	if featured == nil {
		_, err = s.CreateEvent(models.InsertEvent{
			Title:       "Eid al-Adha Celebration",
			Description: "Join us for the Eid al-Adha prayer and celebration. The event includes prayer service, a community feast, activities for children, and distribution of meat to the community.",
			Date:        "July 28, 2023",
			TimeRange:   "9:00 AM - 2:00 PM",
			Location:    str("Kuopio Islamic Center"),
			Type:        "Featured",
			IsFeatured:  true,
			ImageURL:    str("https://images.unsplash.com/photo-1604594849809-dfedbc827105?auto=format&fit=crop&w=600&q=80"),
		})
		if err != nil {
			return err
		}
	}

	events, err := s.GetEvents()
	if err != nil || len(events) > 0 {
		return err
	}
	regular := []models.InsertEvent{
		{
			Title:       "Quran Study Circle",
			Description: "Weekly gathering to study and discuss Quranic verses and their meanings in today's context.",
			Date:        "Every Wednesday",
			TimeRange:   "6:30 PM - 8:00 PM",
			Location:    str("Kuopio Islamic Center"),
			Type:        "Weekly",
		},
		{
			Title:       "Finnish Language Class",
			Description: "Free Finnish language classes for community members. All levels welcome.",
			Date:        "July 18, 2023",
			TimeRange:   "5:00 PM - 6:30 PM",
			Location:    str("Kuopio Islamic Center"),
			Type:        "Bi-weekly",
		},
		{
			Title:       "Youth Sports Day",
			Description: "Sports activities for children and teenagers at the local park. Football, volleyball, and more.",
			Date:        "July 23, 2023",
			TimeRange:   "10:00 AM - 3:00 PM",
			Location:    str("City Park"),
			Type:        "Special",
		},
		{
			Title:       "Community Dinner",
			Description: "Monthly community dinner featuring dishes from various Muslim cultures.",
			Date:        "July 30, 2023",
			TimeRange:   "6:00 PM - 8:30 PM",
			Location:    str("Kuopio Islamic Center"),
			Type:        "Monthly",
		},
	}
	for _, e := range regular {
		if _, err := s.CreateEvent(e); err != nil {
			return err
		}
	}
	return nil
}

func seedNews(s Store) error {
	news, err := s.GetNews()
	if err != nil || len(news) > 0 {
		return err
	}
	items := []models.InsertNews{
		{
			Title:    "Eid Prayer Announcement",
			Content:  "Eid al-Adha prayer will be held at the mosque on July 28, 2023, at 9:00 AM. Please arrive early as we expect a large attendance.",
			Date:     "July 14, 2023",
			ImageURL: "https://images.unsplash.com/photo-1621352404112-58e2468993a0?auto=format&fit=crop&w=600&q=80",
			Author:   str("Imam Ahmed"),
		},
		{
			Title:    "Mosque Renovation Update",
			Content:  "The renovation of the prayer hall will be completed by mid-August. Thank you for your patience and continued support.",
			Date:     "July 10, 2023",
			ImageURL: "https://images.unsplash.com/photo-1606766125414-73cf89d8bbf2?auto=format&fit=crop&w=600&q=80",
			Author:   str("Construction Committee"),
		},
		{
			Title:    "Donation Goal Reached",
			Content:  "Thanks to your generosity, we have reached our fundraising goal for the new children's education center. Construction will begin next month.",
			Date:     "July 5, 2023",
			ImageURL: "https://images.unsplash.com/photo-1577896851887-663e75df029d?auto=format&fit=crop&w=600&q=80",
			Author:   str("Fundraising Committee"),
		},
	}
	for _, n := range items {
		if _, err := s.CreateNewsItem(n); err != nil {
			return err
		}
	}
	return nil
}

func str(s string) *string { return &s }
