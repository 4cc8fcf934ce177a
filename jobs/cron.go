package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// HistoryPurger định nghĩa interface cho việc dọn dẹp lịch sử chat
type HistoryPurger interface {
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PurgeExpiredHistory xóa các lượt chat cũ hơn retentionDays ngày
func PurgeExpiredHistory(purger HistoryPurger, retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return purger.PurgeBefore(context.Background(), cutoff)
}

// InitCronJobs khởi tạo các cron jobs.
// retentionDays <= 0 nghĩa là giữ lịch sử vĩnh viễn, không đăng ký job.
func InitCronJobs(c *cron.Cron, purger HistoryPurger, retentionDays int) error {
	if retentionDays <= 0 {
		log.Println("Retention không bật, bỏ qua cron dọn dẹp lịch sử")
		return nil
	}

	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		deleted, err := PurgeExpiredHistory(purger, retentionDays)
		if err != nil {
			log.Printf("Lỗi khi dọn dẹp lịch sử chat: %v", err)
			return
		}
		log.Printf("Đã dọn dẹp %d lượt chat cũ hơn %d ngày", deleted, retentionDays)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
