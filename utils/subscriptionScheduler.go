package utils

import (
	"log"
	"time"

	"quizapi/database"
	"quizapi/models"

	"github.com/robfig/cron/v3"
)

// InitializeSubscriptionScheduler sets up the subscription expiry scheduler
func InitializeSubscriptionScheduler() {
	log.Println("[SUBSCRIPTION-SCHEDULER] Initializing subscription scheduler...")

	c := cron.New()

	// Run daily at midnight to deactivate expired subscriptions
	c.AddFunc("0 0 * * *", func() {
		log.Println("[SUBSCRIPTION-SCHEDULER] Running daily subscription check...")
		DisableExpiredSubscriptions()
	})

	c.Start()
	log.Println("[SUBSCRIPTION-SCHEDULER] Subscription scheduler started - runs daily at midnight")
}

// DisableExpiredSubscriptions marks active subscriptions past their expiry
// as inactive and notifies the affected users. It shares nothing with the
// test engine beyond the store.
func DisableExpiredSubscriptions() {
	db := database.Database.Db
	now := time.Now()

	var expired []models.UserSubscription
	if err := db.
		Where("is_active = true AND is_deleted = false AND expire_at < ?", now).
		Find(&expired).Error; err != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error fetching expired subscriptions: %v", err)
		return
	}

	if len(expired) == 0 {
		return
	}

	result := db.Model(&models.UserSubscription{}).
		Where("is_active = true AND is_deleted = false AND expire_at < ?", now).
		Update("is_active", false)
	if result.Error != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error expiring subscriptions: %v", result.Error)
		return
	}

	log.Printf("[SUBSCRIPTION-SCHEDULER] Expired %d subscriptions", result.RowsAffected)

	for _, sub := range expired {
		var user models.User
		if err := db.Where("id = ? AND is_deleted = false", sub.UserID).First(&user).Error; err != nil {
			continue
		}
		SendSubscriptionExpiredEmail(user.Email, user.Username)
	}
}
