// token emite un JWT de acceso a los reportes para desarrollo y pruebas
// manuales. Firma con JWT_SECRET / JWT_ISSUER de la configuración.
//
// Uso: go run ./cmd/token --shop shop-1 --role admin
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-reportes/pkg/config"
	"github.com/jhoicas/Inventario-reportes/pkg/jwt"
)

var (
	claims  jwt.Claims
	minutes int

	rootCmd = &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT con la identidad de tenant indicada",
		RunE:  run,
	}
)

func main() {
	f := rootCmd.Flags()
	f.StringVar(&claims.UserID, "user", "", "user_id")
	f.StringVar(&claims.UID, "uid", "", "uid")
	f.StringVar(&claims.SellerID, "seller", "", "seller_id")
	f.StringVar(&claims.ShopID, "shop", "", "shop_id")
	f.StringVar(&claims.StoreID, "store", "", "store_id")
	f.StringVar(&claims.TenantID, "tenant", "", "tenant_id")
	f.StringVar(&claims.BusinessID, "business", "", "business_id")
	f.StringVar(&claims.OwnerID, "owner", "", "owner_id")
	f.StringVar(&claims.CompanyID, "company", "", "company_id")
	f.StringVar(&claims.Role, "role", "", "rol (ver REPORT_ALLOWED_ROLES)")
	f.IntVar(&minutes, "minutes", 0, "vigencia en minutos (por defecto JWT_EXPIRATION_MINUTES)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if minutes <= 0 {
		minutes = cfg.JWT.Expiration
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, cfg.JWT.Issuer, minutes, claims)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
