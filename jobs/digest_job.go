package jobs

import (
	"fmt"
	"log"

	"github.com/kevotieno/craft_agency/database"
	"github.com/kevotieno/craft_agency/models"
	"github.com/kevotieno/craft_agency/notifications"
)

// SendPendingApplicationsDigest mails the operator a daily count of
// applications still waiting for review.
func SendPendingApplicationsDigest() {
	var count int64
	err := database.DB.Model(&models.CourseApplication{}).
		Where("status = ?", models.ApplicationPending).
		Count(&count).Error
	if err != nil {
		log.Printf("🔥 digest: pending-application count failed: %v", err)
		return
	}
	if count == 0 {
		return
	}

	notifications.NotifyOperator(
		"Pending Course Applications",
		fmt.Sprintf("<p>There are <strong>%d</strong> course application(s) waiting for review in the admin panel.</p>", count),
	)
}
