package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	offeringModel "gerejaku_backend/internals/features/offerings/model"
)

// HandleOfferingStatusWebhook dipanggil saat menerima notifikasi dari Midtrans
func HandleOfferingStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var offering offeringModel.Offering
	if err := db.Where("offering_order_id = ?", orderID).First(&offering).Error; err != nil {
		log.Println("[ERROR] Persembahan tidak ditemukan:", err)
		return fmt.Errorf("offering with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		offering.OfferingStatus = "paid"
		offering.OfferingPaidAt = &now

	case "expire":
		offering.OfferingStatus = "expired"
	case "cancel":
		offering.OfferingStatus = "canceled"
	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	if err := db.Save(&offering).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status persembahan:", err)
		return err
	}

	return nil
}
