// file: internals/features/offerings/controller/offering_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/offerings/model"
	"gerejaku_backend/internals/features/offerings/service"
	helper "gerejaku_backend/internals/helpers"
	middleware "gerejaku_backend/internals/middlewares/auth"
)

type OfferingController struct {
	DB *gorm.DB
}

func NewOfferingController(db *gorm.DB) *OfferingController {
	return &OfferingController{DB: db}
}

var validateOffering = validator.New()

type createOfferingRequest struct {
	OfferingAmount     int    `json:"offering_amount" validate:"required,min=1000"`
	OfferingCategory   string `json:"offering_category" validate:"omitempty,oneof=umum pembangunan diakonia misi"`
	OfferingMessage    string `json:"offering_message" validate:"omitempty,max=500"`
	OfferingDonorName  string `json:"offering_donor_name" validate:"omitempty,max=100"`
	OfferingDonorEmail string `json:"offering_donor_email" validate:"omitempty,email"`
}

// ✅ POST /api/public/offerings
// Membuat persembahan + Snap token. Jemaat yang login otomatis tertaut ke akunnya.
func (ctrl *OfferingController) Create(c *fiber.Ctx) error {
	var req createOfferingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateOffering.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	category := req.OfferingCategory
	if category == "" {
		category = "umum"
	}
	name := strings.TrimSpace(req.OfferingDonorName)
	if name == "" {
		name = "Jemaat"
	}

	row := model.Offering{
		OfferingOrderID:    fmt.Sprintf("OFR-%d-%s", time.Now().Unix(), uuid.NewString()[:8]),
		OfferingAmount:     req.OfferingAmount,
		OfferingCategory:   category,
		OfferingMessage:    req.OfferingMessage,
		OfferingStatus:     "pending",
		OfferingDonorName:  name,
		OfferingDonorEmail: req.OfferingDonorEmail,
	}
	if userID, err := middleware.GetUserID(c); err == nil {
		row.OfferingUserID = &userID
	}

	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan persembahan")
	}

	token, redirectURL, err := service.GenerateSnapToken(row, name, req.OfferingDonorEmail)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Persembahan berhasil dibuat", fiber.Map{
		"offering":     row,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

// ✅ POST /api/public/offerings/webhook — notifikasi status dari Midtrans
func (ctrl *OfferingController) Webhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := service.HandleOfferingStatusWebhook(ctrl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "Status persembahan diperbarui", nil)
}

// ✅ GET /api/public/offerings/:orderId/status
func (ctrl *OfferingController) GetStatus(c *fiber.Ctx) error {
	var row model.Offering
	if err := ctrl.DB.
		Where("offering_order_id = ?", c.Params("orderId")).
		First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Persembahan tidak ditemukan")
	}
	return helper.Success(c, "Status persembahan berhasil diambil", fiber.Map{
		"offering_order_id": row.OfferingOrderID,
		"offering_status":   row.OfferingStatus,
		"offering_paid_at":  row.OfferingPaidAt,
	})
}

// ✅ GET /api/a/offerings — daftar untuk bendahara, dengan paginasi & filter status
func (ctrl *OfferingController) List(c *fiber.Ctx) error {
	p := helper.ParseFiberWith(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.Offering{})
	if status := c.Query("status"); status != "" {
		q = q.Where("offering_status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("offering_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung persembahan")
	}

	allowed := map[string]string{
		"created_at": "offering_created_at",
		"amount":     "offering_amount",
		"paid_at":    "offering_paid_at",
	}
	orderClause, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	var rows []model.Offering
	if err := q.
		Order(orderClause).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar persembahan")
	}

	return helper.Success(c, "Daftar persembahan berhasil diambil", fiber.Map{
		"items": rows,
		"meta":  helper.BuildMeta(total, p),
	})
}

// ✅ GET /api/a/offerings/summary — rekap jumlah terbayar per kategori
func (ctrl *OfferingController) Summary(c *fiber.Ctx) error {
	type bucket struct {
		Category string `gorm:"column:offering_category" json:"category"`
		Total    int64  `json:"total"`
		Count    int64  `json:"count"`
	}
	var buckets []bucket
	if err := ctrl.DB.Model(&model.Offering{}).
		Select("offering_category, COALESCE(SUM(offering_amount),0) AS total, COUNT(*) AS count").
		Where("offering_status = ?", "paid").
		Group("offering_category").
		Find(&buckets).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung rekap persembahan")
	}
	return helper.Success(c, "Rekap persembahan berhasil diambil", buckets)
}
