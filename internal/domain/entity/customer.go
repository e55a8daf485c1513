package entity

// Customer cliente de la tienda; se usa para el bloque de cliente de la factura
// y para los saldos por cobrar.
type Customer struct {
	Ownership
	ID      Ref  `json:"id"`
	DocID   Ref  `json:"_id"`
	Name    Text `json:"name"`
	Phone   Text `json:"phone"`
	Address Text `json:"address"`
}

// Key identificador del cliente.
func (c *Customer) Key() string { return FirstRef(c.ID, c.DocID) }
