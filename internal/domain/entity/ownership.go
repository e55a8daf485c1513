package entity

// Ownership agrupa las rutas de campo conocidas que identifican al dueño
// (vendedor/tenant) de un registro. Se embebe en cada registro de origen.
//
// Las 17 rutas cubren los esquemas históricos de la app (camelCase, snake_case
// y objetos anidados como seller.id).
type Ownership struct {
	SellerID      Ref `json:"sellerId,omitempty"`
	SellerIDSnake Ref `json:"seller_id,omitempty"`
	Seller        Ref `json:"seller,omitempty"` // seller.id / seller._id / seller.uid
	UserID        Ref `json:"userId,omitempty"`
	UserIDSnake   Ref `json:"user_id,omitempty"`
	UID           Ref `json:"uid,omitempty"`
	OwnerID       Ref `json:"ownerId,omitempty"`
	OwnerIDSnake  Ref `json:"owner_id,omitempty"`
	ShopID        Ref `json:"shopId,omitempty"`
	ShopIDSnake   Ref `json:"shop_id,omitempty"`
	StoreID       Ref `json:"storeId,omitempty"`
	StoreIDSnake  Ref `json:"store_id,omitempty"`
	TenantID      Ref `json:"tenantId,omitempty"`
	TenantIDSnake Ref `json:"tenant_id,omitempty"`
	BusinessID    Ref `json:"businessId,omitempty"`
	CompanyID     Ref `json:"companyId,omitempty"`
	CreatedBy     Ref `json:"createdBy,omitempty"`
}

// OwnerRefs devuelve los valores de dueño informados en el registro.
func (o Ownership) OwnerRefs() []string {
	all := [...]Ref{
		o.SellerID, o.SellerIDSnake, o.Seller,
		o.UserID, o.UserIDSnake, o.UID,
		o.OwnerID, o.OwnerIDSnake,
		o.ShopID, o.ShopIDSnake,
		o.StoreID, o.StoreIDSnake,
		o.TenantID, o.TenantIDSnake,
		o.BusinessID, o.CompanyID, o.CreatedBy,
	}
	out := make([]string, 0, 2)
	for _, r := range all {
		if r.Present() {
			out = append(out, r.String())
		}
	}
	return out
}

// Owned lo implementa todo registro con dueño (ver report.ScopeFilter).
type Owned interface {
	OwnerRefs() []string
}
