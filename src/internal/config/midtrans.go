package config

import (
	"rental-service/src/internal/gateway/midtrans"

	"github.com/spf13/viper"
)

func NewMidtransClient(viper *viper.Viper) *midtrans.Client {
	return midtrans.NewClient(midtrans.Config{
		ServerKey:  viper.GetString("midtrans.server_key"),
		ClientKey:  viper.GetString("midtrans.client_key"),
		Production: viper.GetBool("midtrans.production"),
	})
}
