package service

import (
	"gerejaku_backend/internals/features/offerings/model"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var SnapClient snap.Client

// Panggil saat bootstrap app (sandbox)
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// Buat Snap token + redirect_url untuk satu persembahan
func GenerateSnapToken(o model.Offering, name, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  o.OfferingOrderID,
			GrossAmt: int64(o.OfferingAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}

	return resp.Token, resp.RedirectURL, nil
}
