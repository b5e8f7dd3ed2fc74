package backend

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/voucher/internal/entity"
)

// Envelope wraps every backend response body.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
}

type Pagy struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalCount  int `json:"total_count"`
	PerPage     int `json:"per_page"`
}

type Paginated[T any] struct {
	Pagy  Pagy `json:"pagy"`
	Items []T  `json:"items"`
}

type named struct {
	ID           int64  `json:"id"`
	Nome         string `json:"nome"`
	NomeFantasia string `json:"nome_fantasia"`
	Descricao    string `json:"descricao"`
	Placa        string `json:"placa"`
}

type RequisitionResponse struct {
	ID                 int64               `json:"id"`
	DataEmissao        string              `json:"data_emissao"`
	KmAtual            *int64              `json:"km_atual"`
	Destino            *string             `json:"destino"`
	PrecoUnitario      decimal.NullDecimal `json:"preco_unitario"`
	QuantidadeLitros   decimal.NullDecimal `json:"quantidade_litros"`
	ValorTotal         decimal.NullDecimal `json:"valor_total"`
	ValorLimite        decimal.NullDecimal `json:"valor_limite"`
	CompletarTanque    bool                `json:"completar_tanque"`
	VoucherCodigo      *string             `json:"voucher_codigo"`
	VoucherStatus      string              `json:"voucher_status"`
	VoucherValidade    *string             `json:"voucher_validade"`
	VoucherValidadoEm  *string             `json:"voucher_validado_em"`
	GVeiculoID         int64               `json:"g_veiculo_id"`
	CPostoID           int64               `json:"c_posto_id"`
	CTipoCombustivelID int64               `json:"c_tipo_combustivel_id"`
	GCentroCustoID     *int64              `json:"g_centro_custo_id"`
	CPosto             *named              `json:"c_posto"`
	GVeiculo           *named              `json:"g_veiculo"`
	CTipoCombustivel   *named              `json:"c_tipo_combustivel"`
	GCentroCusto       *named              `json:"g_centro_custo"`
}

// Entity converts the response and fails on anything it cannot interpret.
func (r RequisitionResponse) Entity() (entity.Requisition, error) {
	if r.ID <= 0 {
		return entity.Requisition{}, fmt.Errorf("%w: requisition without id", entity.ErrBadResponse)
	}

	status, err := entity.ParseRequisitionStatus(r.VoucherStatus)
	if err != nil {
		return entity.Requisition{}, err
	}

	issuedAt, err := parseTime(r.DataEmissao, false)
	if err != nil {
		return entity.Requisition{}, fmt.Errorf("data_emissao: %w", err)
	}

	expiresAt, err := parseTime(deref(r.VoucherValidade), true)
	if err != nil {
		return entity.Requisition{}, fmt.Errorf("voucher_validade: %w", err)
	}

	settledAt, err := parseTime(deref(r.VoucherValidadoEm), false)
	if err != nil {
		return entity.Requisition{}, fmt.Errorf("voucher_validado_em: %w", err)
	}

	req := entity.Requisition{
		ID:              r.ID,
		Code:            strings.TrimSpace(deref(r.VoucherCodigo)),
		VehicleID:       r.GVeiculoID,
		StationID:       r.CPostoID,
		FuelTypeID:      r.CTipoCombustivelID,
		IssuedAt:        issuedAt,
		ExpiresAt:       expiresAt,
		Limit:           r.ValorLimite,
		FillTank:        r.CompletarTanque,
		LitersDispensed: r.QuantidadeLitros.Decimal,
		UnitPrice:       r.PrecoUnitario.Decimal,
		TotalAmount:     r.ValorTotal.Decimal,
		SettledAt:       settledAt,
		Status:          status,
		Destination:     deref(r.Destino),
	}

	if r.GCentroCustoID != nil {
		req.CostCenterID = *r.GCentroCustoID
	}

	if r.KmAtual != nil {
		req.Odometer = *r.KmAtual
	}

	if r.GVeiculo != nil {
		req.VehiclePlate = r.GVeiculo.Placa
	}

	if r.CPosto != nil {
		req.StationName = r.CPosto.NomeFantasia
	}

	if r.CTipoCombustivel != nil {
		req.FuelTypeName = r.CTipoCombustivel.Descricao
	}

	if r.GCentroCusto != nil {
		req.CostCenterName = r.GCentroCusto.Nome
	}

	return req, nil
}

type SettleRequest struct {
	QuantidadeLitros decimal.Decimal `json:"quantidade_litros"`
	ValorTotal       decimal.Decimal `json:"valor_total"`
}

type CreateRequisitionRequest struct {
	Requisition CreateRequisition `json:"c_requisicao_combustivel"`
}

type CreateRequisition struct {
	GVeiculoID         int64               `json:"g_veiculo_id"`
	CPostoID           int64               `json:"c_posto_id"`
	CTipoCombustivelID int64               `json:"c_tipo_combustivel_id"`
	GCentroCustoID     *int64              `json:"g_centro_custo_id,omitempty"`
	KmAtual            *int64              `json:"km_atual,omitempty"`
	Destino            string              `json:"destino,omitempty"`
	ValorLimite        decimal.NullDecimal `json:"valor_limite"`
	CompletarTanque    bool                `json:"completar_tanque"`
	VoucherCodigo      string              `json:"voucher_codigo,omitempty"`
}

func createRequisitionFromEntity(r entity.IssueRequest) CreateRequisitionRequest {
	c := CreateRequisition{
		GVeiculoID:         r.VehicleID,
		CPostoID:           r.StationID,
		CTipoCombustivelID: r.FuelTypeID,
		Destino:            r.Destination,
		ValorLimite:        r.Limit,
		CompletarTanque:    r.FillTank,
		VoucherCodigo:      r.Code,
	}

	if r.CostCenterID > 0 {
		c.GCentroCustoID = &r.CostCenterID
	}

	if r.Odometer > 0 {
		c.KmAtual = &r.Odometer
	}

	return CreateRequisitionRequest{Requisition: c}
}

type FuelPriceResponse struct {
	ID                 int64           `json:"id"`
	Preco              decimal.Decimal `json:"preco"`
	Validade           *string         `json:"validade"`
	CTipoCombustivelID int64           `json:"c_tipo_combustivel_id"`
	CTipoCombustivel   *named          `json:"c_tipo_combustivel"`
}

func (p FuelPriceResponse) Entity() (entity.FuelPrice, error) {
	validUntil, err := parseTime(deref(p.Validade), true)
	if err != nil {
		return entity.FuelPrice{}, fmt.Errorf("validade: %w", err)
	}

	price := entity.FuelPrice{
		ID:         p.ID,
		FuelTypeID: p.CTipoCombustivelID,
		Price:      p.Preco,
		ValidUntil: validUntil,
	}

	if p.CTipoCombustivel != nil {
		price.FuelType = p.CTipoCombustivel.Descricao
	}

	return price, nil
}

type MeResponse struct {
	User UserResponse `json:"user"`
}

type UserResponse struct {
	ID          int64  `json:"id"`
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	TipoUsuario string `json:"tipo_usuario"`
	Unidade     *named `json:"unidade"`
	Fornecedor  *named `json:"fornecedor"`
}

func (u UserResponse) Entity() (entity.User, error) {
	if u.ID <= 0 {
		return entity.User{}, fmt.Errorf("%w: user without id", entity.ErrBadResponse)
	}

	user := entity.User{
		ID:    u.ID,
		Name:  u.Nome,
		Email: u.Email,
		Type:  entity.UserType(strings.ToLower(u.TipoUsuario)),
	}

	if u.Unidade != nil {
		user.UnitID = u.Unidade.ID
	}

	if u.Fornecedor != nil {
		user.SupplierID = u.Fornecedor.ID
	}

	return user, nil
}

// parseTime accepts the timestamp layouts the backend emits. A bare date used as a
// validity limit means the end of that day.
func parseTime(s string, endOfDay bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateTime} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unknown time format %q", entity.ErrBadResponse, s)
	}

	if endOfDay {
		t = t.AddDate(0, 0, 1)
	}

	return t, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}

	return *v
}
