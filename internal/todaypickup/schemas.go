package todaypickup

// The types below mirror the TodayPickup wire format field for field. They are
// pass-through containers: optional fields are pointers that marshal to absent
// keys, and the only constraints carried are the required/length rules the
// upstream documents. No business validation happens here. The Y/N flags that
// the upstream defines with a wire default of "N" (invoicePrintYn, the
// postal-list dawnDelivery) are filled in by the client wrappers before
// marshaling, so an omitted flag is still sent as "N".

// AuthAgencyDTO is the credential payload for token issuance.
type AuthAgencyDTO struct {
	AccessKey *string `json:"accessKey,omitempty"`
	Nonce     *string `json:"nonce,omitempty"`
	Timestamp *string `json:"timestamp,omitempty"`
}

// DeliveryUpdateConsignDTO updates consignment info for an invoice.
type DeliveryUpdateConsignDTO struct {
	ExtOrderID    *string `json:"extOrderId,omitempty"`
	InvoiceNumber *string `json:"invoiceNumber,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// DeliveryInvoiceNumberDTO carries a single invoice number.
type DeliveryInvoiceNumberDTO struct {
	InvoiceNumber *string `json:"invoiceNumber,omitempty"`
}

// DeliveryFlexListUpdateDTO carries a list of invoice numbers for flex hand-off.
type DeliveryFlexListUpdateDTO struct {
	InvoiceNumberList []string `json:"invoiceNumberList,omitempty"`
}

// DeliveryStateUpdateDTO updates the state of a delivery.
type DeliveryStateUpdateDTO struct {
	HoldCode      *string `json:"holdCode,omitempty"`
	ImgURL        *string `json:"imgUrl,omitempty"`
	InvoiceNumber *string `json:"invoiceNumber,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// PostalCodeSaveDTO is one serviceable-area record inside PostalCodeListDTO.
type PostalCodeSaveDTO struct {
	BuildingCode  *string `json:"buildingCode,omitempty"`
	BuildingName  *string `json:"buildingName,omitempty"`
	LegalDongCode *string `json:"legalDongCode,omitempty"`
	RoadCode      *string `json:"roadCode,omitempty"`
	RoadName      *string `json:"roadName,omitempty"`
	PostNumber    string  `json:"postNumber" validate:"required"`
	Sido          string  `json:"sido" validate:"required"`
	Gugun         string  `json:"gugun" validate:"required"`
	PossibleArea  string  `json:"possibleArea" validate:"required"`
	DeliveryGroup *string `json:"deliveryGroup,omitempty"`
	AdminDong     *string `json:"adminDong,omitempty"`
	LegalDong     *string `json:"legalDong,omitempty"`
}

// PostalCodeListDTO uploads the serviceable postal-code areas for an agency.
// DawnDelivery is "Y" or "N"; unset is sent as "N".
type PostalCodeListDTO struct {
	DawnDelivery       *string             `json:"dawnDelivery,omitempty"`
	PostNumberSaveList []PostalCodeSaveDTO `json:"postNumberSaveList" validate:"required,dive"`
}

// GoodsReturnRequestDTO requests cancellation or return of one delivery.
type GoodsReturnRequestDTO struct {
	InvoiceNumber string `json:"invoiceNumber" validate:"required"`
}

// GoodsNoDawnDTO is a goods record without a per-record dawn-delivery flag,
// used in list registrations where the flag lives on the envelope.
type GoodsNoDawnDTO struct {
	ChildrenMallID     *string `json:"childrenMallId,omitempty"`
	DeliveryAddress    string  `json:"deliveryAddress" validate:"required"`
	DeliveryAddressEng *string `json:"deliveryAddressEng,omitempty"`
	DeliveryMessage    *string `json:"deliveryMessage,omitempty"`
	DeliveryName       string  `json:"deliveryName" validate:"required"`
	DeliveryPhone      string  `json:"deliveryPhone" validate:"required"`
	DeliveryPostal     *string `json:"deliveryPostal,omitempty"`
	DeliveryTel        *string `json:"deliveryTel,omitempty"`
	GoodsName          *string `json:"goodsName,omitempty"`
	InvoiceNumber      *string `json:"invoiceNumber,omitempty" validate:"omitempty,max=12"`
	InvoicePrintYn     *string `json:"invoicePrintYn,omitempty"`
	MallName           string  `json:"mallName" validate:"required"`
	OptionName         *string `json:"optionName,omitempty"`
	OrderNumber        *string `json:"orderNumber,omitempty"`
	Quantity           *int    `json:"quantity,omitempty"`
	ReserveDt          *string `json:"reserveDt,omitempty"`
}

// MallApiDeliveryDTO registers a list of goods for delivery.
type MallApiDeliveryDTO struct {
	DawnDelivery *string          `json:"dawnDelivery,omitempty"`
	GoodsList    []GoodsNoDawnDTO `json:"goodsList" validate:"required,dive"`
}

// GoodsDTO is a single goods record; unlike GoodsNoDawnDTO the dawn-delivery
// flag sits on the record itself.
type GoodsDTO struct {
	ChildrenMallID     *string `json:"childrenMallId,omitempty"`
	DawnDelivery       *string `json:"dawnDelivery,omitempty"`
	DeliveryAddress    string  `json:"deliveryAddress" validate:"required"`
	DeliveryAddressEng *string `json:"deliveryAddressEng,omitempty"`
	DeliveryMessage    *string `json:"deliveryMessage,omitempty"`
	DeliveryName       string  `json:"deliveryName" validate:"required"`
	DeliveryPhone      string  `json:"deliveryPhone" validate:"required"`
	DeliveryPostal     *string `json:"deliveryPostal,omitempty"`
	DeliveryTel        *string `json:"deliveryTel,omitempty"`
	GoodsName          *string `json:"goodsName,omitempty"`
	InvoiceNumber      *string `json:"invoiceNumber,omitempty" validate:"omitempty,max=12"`
	InvoicePrintYn     *string `json:"invoicePrintYn,omitempty"`
	MallName           string  `json:"mallName" validate:"required"`
	OptionName         *string `json:"optionName,omitempty"`
	OrderNumber        *string `json:"orderNumber,omitempty"`
	Quantity           *int    `json:"quantity,omitempty"`
	ReserveDt          *string `json:"reserveDt,omitempty"`
}

// MallApiReturnDTO registers a list of goods for return pickup.
type MallApiReturnDTO struct {
	GoodsList []GoodsNoDawnDTO `json:"goodsList" validate:"required,dive"`
}

// flagN fills a Y/N flag with its wire default "N" when unset.
func flagN(p **string) {
	if *p == nil {
		n := "N"
		*p = &n
	}
}

func (d *PostalCodeListDTO) applyWireDefaults() { flagN(&d.DawnDelivery) }

func (g *GoodsNoDawnDTO) applyWireDefaults() { flagN(&g.InvoicePrintYn) }

func (g *GoodsDTO) applyWireDefaults() { flagN(&g.InvoicePrintYn) }

// The envelope dawnDelivery has no wire default; only the per-goods print
// flags are filled.
func (d *MallApiDeliveryDTO) applyWireDefaults() {
	for i := range d.GoodsList {
		d.GoodsList[i].applyWireDefaults()
	}
}

func (d *MallApiReturnDTO) applyWireDefaults() {
	for i := range d.GoodsList {
		d.GoodsList[i].applyWireDefaults()
	}
}
