package service

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
)

// In-memory repository mocks. They serialize on a mutex the way the real
// adapters serialize on row locks, so concurrency tests exercise the same
// contract.

type mockInventoryRepo struct {
	mu          sync.Mutex
	products    map[uuid.UUID]*model.Product
	logs        []model.InventoryLog
	adjustCalls int
}

func newMockInventoryRepo() *mockInventoryRepo {
	return &mockInventoryRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (m *mockInventoryRepo) addProduct(p *model.Product) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.products[p.ID] = p
}

func (m *mockInventoryRepo) AdjustStock(productID uuid.UUID, changeAmount int, reason string, userID *uuid.UUID) (*model.InventoryLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adjustCalls++

	p, ok := m.products[productID]
	if !ok || p.DeletedAt.Valid {
		return nil, apperror.NotFound("product not found")
	}

	newStock := p.StockQuantity + changeAmount
	if newStock < 0 {
		return nil, apperror.InsufficientStock("adjustment would drive stock below zero")
	}
	p.StockQuantity = newStock

	entry := model.InventoryLog{
		ID:           uuid.New(),
		ProductID:    p.ID,
		ChangeAmount: changeAmount,
		Reason:       reason,
		UserID:       userID,
		CreatedAt:    time.Now(),
	}
	m.logs = append(m.logs, entry)

	snapshot := *p
	out := entry
	out.Product = &snapshot
	return &out, nil
}

func (m *mockInventoryRepo) FindLogs(p repository.Pagination) ([]model.InventoryLog, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.InventoryLog, len(m.logs))
	copy(out, m.logs)
	return out, int64(len(out)), nil
}

func (m *mockInventoryRepo) FindLogByID(id uuid.UUID) (*model.InventoryLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.logs {
		if l.ID == id {
			out := l
			return &out, nil
		}
	}
	return nil, apperror.NotFound("inventory log not found")
}

type mockReportRepo struct {
	salesByDay []repository.DailySales
	revenue    int64
	orders     int64
	lowStock   []model.Product
}

func (m *mockReportRepo) SalesByDay(start, end time.Time) ([]repository.DailySales, error) {
	return m.salesByDay, nil
}

func (m *mockReportRepo) SalesTotals(start, end time.Time) (int64, int64, error) {
	return m.revenue, m.orders, nil
}

func (m *mockReportRepo) LowStockProducts() ([]model.Product, error) {
	return m.lowStock, nil
}

type mockProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*model.Product
	creates  int
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (m *mockProductRepo) Create(product *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) FindAll(p repository.Pagination) ([]model.Product, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Product
	for _, pr := range m.products {
		out = append(out, *pr)
	}
	return out, int64(len(out)), nil
}

func (m *mockProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok {
		out := *p
		return &out, nil
	}
	return nil, apperror.NotFound("product not found")
}

func (m *mockProductRepo) FindBySKU(sku string) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.SKU == sku {
			out := *p
			return &out, nil
		}
	}
	return nil, apperror.NotFound("product not found")
}

func (m *mockProductRepo) FindByBarcode(barcode string) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			out := *p
			return &out, nil
		}
	}
	return nil, apperror.NotFound("product not found")
}

func (m *mockProductRepo) Search(query string, p repository.Pagination) ([]model.Product, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Product
	for _, pr := range m.products {
		if strings.Contains(pr.Name, query) || strings.Contains(pr.SKU, query) {
			out = append(out, *pr)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockProductRepo) Update(product *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return apperror.NotFound("product not found")
	}
	delete(m.products, id)
	return nil
}

type mockUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (m *mockUserRepo) addUser(u *model.User) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	m.users[u.ID] = u
}

func (m *mockUserRepo) Create(user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindAll(p repository.Pagination) ([]model.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		out := *u
		return &out, nil
	}
	return nil, apperror.NotFound("user not found")
}

func (m *mockUserRepo) FindByUsername(username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (m *mockUserRepo) FindByEmail(email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (m *mockUserRepo) Update(user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return apperror.NotFound("user not found")
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) Count() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

type mockTransactionRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*model.Product
	created  []*model.Transaction
}

func newMockTransactionRepo() *mockTransactionRepo {
	return &mockTransactionRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (m *mockTransactionRepo) addProduct(p *model.Product) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.products[p.ID] = p
}

func (m *mockTransactionRepo) Create(transaction *model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total int64
	for i := range transaction.Items {
		item := &transaction.Items[i]
		p, ok := m.products[item.ProductID]
		if !ok {
			return apperror.NotFound("product not found")
		}
		if p.StockQuantity < item.Quantity {
			return apperror.InsufficientStock("insufficient stock")
		}
		p.StockQuantity -= item.Quantity
		item.UnitPrice = p.Price
		item.Subtotal = p.Price * int64(item.Quantity)
		total += item.Subtotal
	}

	transaction.ID = uuid.New()
	transaction.TotalAmount = total
	transaction.Status = model.TransactionCompleted
	m.created = append(m.created, transaction)
	return nil
}

func (m *mockTransactionRepo) FindAll(p repository.Pagination) ([]model.Transaction, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Transaction
	for _, t := range m.created {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (m *mockTransactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.created {
		if t.ID == id {
			out := *t
			return &out, nil
		}
	}
	return nil, apperror.NotFound("transaction not found")
}

func (m *mockTransactionRepo) Refund(id uuid.UUID) (*model.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.created {
		if t.ID == id {
			if t.Status == model.TransactionRefunded {
				return nil, apperror.Conflict("transaction already refunded")
			}
			for _, item := range t.Items {
				if p, ok := m.products[item.ProductID]; ok {
					p.StockQuantity += item.Quantity
				}
			}
			t.Status = model.TransactionRefunded
			out := *t
			return &out, nil
		}
	}
	return nil, apperror.NotFound("transaction not found")
}

type mockSettingRepo struct {
	mu      sync.Mutex
	setting *model.StoreSetting
	admins  []*model.User
}

func (m *mockSettingRepo) Get() (*model.StoreSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setting == nil {
		return nil, apperror.NotFound("store setting not found")
	}
	out := *m.setting
	return &out, nil
}

func (m *mockSettingRepo) Initialize(admin *model.User, setting *model.StoreSetting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setting != nil && m.setting.SetupCompleted {
		return apperror.Conflict("setup already completed")
	}
	setting.SetupCompleted = true
	m.setting = setting
	m.admins = append(m.admins, admin)
	return nil
}
