package service

import (
	"context"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. The service layer is exercised against a
// Repository aggregate built from these; the zero-value aggregate joins the
// ambient transaction so WithTx closures run directly against the fakes.

type mockCustomerRepository struct {
	customers map[string]*domain.Customer
	nextID    int64
}

func newMockCustomerRepository() *mockCustomerRepository {
	return &mockCustomerRepository{customers: make(map[string]*domain.Customer)}
}

func (m *mockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	m.nextID++
	customer.ID = m.nextID
	m.customers[customer.Phone] = customer
	return nil
}

func (m *mockCustomerRepository) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	customer, ok := m.customers[phone]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}
	return customer, nil
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	for _, customer := range m.customers {
		if customer.ID == id {
			return customer, nil
		}
	}
	return nil, repository.ErrCustomerNotFound
}

func (m *mockCustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	customers := make([]*domain.Customer, 0, len(m.customers))
	for _, customer := range m.customers {
		customers = append(customers, customer)
	}
	return customers, nil
}

type mockOrderRepository struct {
	orders map[int64]*domain.Order
	nextID int64
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[int64]*domain.Order)}
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	m.nextID++
	order.ID = m.nextID
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepository) FindByCode(ctx context.Context, code string) (*domain.Order, error) {
	for _, order := range m.orders {
		if order.OrderCode == code {
			copied := *order
			return &copied, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (m *mockOrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0, len(m.orders))
	for _, order := range m.orders {
		orders = append(orders, order)
	}
	return orders, nil
}

func (m *mockOrderRepository) ListByMonth(ctx context.Context, month int) ([]*domain.Order, error) {
	var orders []*domain.Order
	for _, order := range m.orders {
		if order.Month == month {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (m *mockOrderRepository) CountByMonth(ctx context.Context, month int) (int, error) {
	orders, _ := m.ListByMonth(ctx, month)
	return len(orders), nil
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id int64, update repository.OrderStatusUpdate) error {
	order, ok := m.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.Status = update.Status
	if update.PaymentStatus != nil {
		order.PaymentStatus = *update.PaymentStatus
	}
	if update.ShippedAt != nil {
		order.ShippedAt = update.ShippedAt
	}
	if update.DeliveredAt != nil {
		order.DeliveredAt = update.DeliveredAt
	}
	return nil
}

type mockOrderItemRepository struct {
	items  map[int64]*domain.OrderItem
	nextID int64
}

func newMockOrderItemRepository() *mockOrderItemRepository {
	return &mockOrderItemRepository{items: make(map[int64]*domain.OrderItem)}
}

func (m *mockOrderItemRepository) Create(ctx context.Context, item *domain.OrderItem) error {
	m.nextID++
	item.ID = m.nextID
	m.items[item.ID] = item
	return nil
}

func (m *mockOrderItemRepository) ListByOrderID(ctx context.Context, orderID int64) ([]*domain.OrderItem, error) {
	var items []*domain.OrderItem
	for _, item := range m.items {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	return items, nil
}

type mockRevenueRepository struct {
	entries map[int64]*domain.Revenue
	nextID  int64
}

func newMockRevenueRepository() *mockRevenueRepository {
	return &mockRevenueRepository{entries: make(map[int64]*domain.Revenue)}
}

func (m *mockRevenueRepository) Create(ctx context.Context, entry *domain.Revenue) error {
	m.nextID++
	entry.ID = m.nextID
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockRevenueRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.entries[id]; !ok {
		return repository.ErrRevenueNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *mockRevenueRepository) FindByOrderID(ctx context.Context, orderID int64) (*domain.Revenue, error) {
	for _, entry := range m.entries {
		if entry.OrderID != nil && *entry.OrderID == orderID {
			return entry, nil
		}
	}
	return nil, repository.ErrRevenueNotFound
}

func (m *mockRevenueRepository) ListByMonth(ctx context.Context, month int) ([]*domain.Revenue, error) {
	var entries []*domain.Revenue
	for _, entry := range m.entries {
		if entry.Month == month {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (m *mockRevenueRepository) TotalByMonth(ctx context.Context, month int) (int64, error) {
	var total int64
	for _, entry := range m.entries {
		if entry.Month == month {
			total += entry.Amount
		}
	}
	return total, nil
}

type mockAppointmentRepository struct {
	appointments map[int64]*domain.Appointment
	nextID       int64
}

func newMockAppointmentRepository() *mockAppointmentRepository {
	return &mockAppointmentRepository{appointments: make(map[int64]*domain.Appointment)}
}

func (m *mockAppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	m.nextID++
	appointment.ID = m.nextID
	m.appointments[appointment.ID] = appointment
	return nil
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, ok := m.appointments[id]
	if !ok {
		return nil, repository.ErrAppointmentNotFound
	}
	copied := *appointment
	return &copied, nil
}

func (m *mockAppointmentRepository) List(ctx context.Context) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0, len(m.appointments))
	for _, appointment := range m.appointments {
		appointments = append(appointments, appointment)
	}
	return appointments, nil
}

func (m *mockAppointmentRepository) ListByMonth(ctx context.Context, month int) ([]*domain.Appointment, error) {
	var appointments []*domain.Appointment
	for _, appointment := range m.appointments {
		if appointment.Month == month {
			appointments = append(appointments, appointment)
		}
	}
	return appointments, nil
}

func (m *mockAppointmentRepository) CountByMonth(ctx context.Context, month int) (int, error) {
	appointments, _ := m.ListByMonth(ctx, month)
	return len(appointments), nil
}

func (m *mockAppointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	appointment, ok := m.appointments[id]
	if !ok {
		return repository.ErrAppointmentNotFound
	}
	appointment.Status = status
	return nil
}

type mockProductRepository struct {
	products map[int64]*domain.Product
	nextID   int64
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[int64]*domain.Product)}
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	m.nextID++
	product.ID = m.nextID
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if _, ok := m.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (m *mockProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0, len(m.products))
	for _, product := range m.products {
		products = append(products, product)
	}
	return products, nil
}

func (m *mockProductRepository) ListFeatured(ctx context.Context) ([]*domain.Product, error) {
	var products []*domain.Product
	for _, product := range m.products {
		if product.Featured {
			products = append(products, product)
		}
	}
	return products, nil
}

type mockMessageRepository struct {
	messages map[int64]*domain.Message
	nextID   int64
}

func newMockMessageRepository() *mockMessageRepository {
	return &mockMessageRepository{messages: make(map[int64]*domain.Message)}
}

func (m *mockMessageRepository) Create(ctx context.Context, message *domain.Message) error {
	m.nextID++
	message.ID = m.nextID
	m.messages[message.ID] = message
	return nil
}

func (m *mockMessageRepository) List(ctx context.Context) ([]*domain.Message, error) {
	messages := make([]*domain.Message, 0, len(m.messages))
	for _, message := range m.messages {
		messages = append(messages, message)
	}
	return messages, nil
}

func (m *mockMessageRepository) ListByMonth(ctx context.Context, month int) ([]*domain.Message, error) {
	var messages []*domain.Message
	for _, message := range m.messages {
		if message.Month == month {
			messages = append(messages, message)
		}
	}
	return messages, nil
}

func (m *mockMessageRepository) CountByMonth(ctx context.Context, month int) (int, error) {
	messages, _ := m.ListByMonth(ctx, month)
	return len(messages), nil
}

func (m *mockMessageRepository) UpdateStatus(ctx context.Context, id int64, status domain.MessageStatus) error {
	message, ok := m.messages[id]
	if !ok {
		return repository.ErrMessageNotFound
	}
	message.Status = status
	return nil
}

type mockNotificationRepository struct {
	notifications map[int64]*domain.Notification
	nextID        int64
}

func newMockNotificationRepository() *mockNotificationRepository {
	return &mockNotificationRepository{notifications: make(map[int64]*domain.Notification)}
}

func (m *mockNotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	m.nextID++
	notification.ID = m.nextID
	m.notifications[notification.ID] = notification
	return nil
}

func (m *mockNotificationRepository) List(ctx context.Context) ([]*domain.Notification, error) {
	notifications := make([]*domain.Notification, 0, len(m.notifications))
	for _, notification := range m.notifications {
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

func (m *mockNotificationRepository) ListUnread(ctx context.Context) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	for _, notification := range m.notifications {
		if !notification.IsRead {
			notifications = append(notifications, notification)
		}
	}
	return notifications, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context) (int, error) {
	notifications, _ := m.ListUnread(ctx)
	return len(notifications), nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id int64) error {
	notification, ok := m.notifications[id]
	if !ok {
		return repository.ErrNotificationNotFound
	}
	notification.IsRead = true
	return nil
}

type mockUserRepository struct {
	users map[string]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, exists := m.users[user.Email]; exists {
		return repository.ErrUserAlreadyExists
	}
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type mockRefreshTokenRepository struct {
	tokens map[string]*domain.RefreshToken
}

func newMockRefreshTokenRepository() *mockRefreshTokenRepository {
	return &mockRefreshTokenRepository{tokens: make(map[string]*domain.RefreshToken)}
}

func (m *mockRefreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	m.tokens[token.Token] = token
	return nil
}

func (m *mockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	refreshToken, ok := m.tokens[token]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}
	if refreshToken.Revoked {
		return nil, repository.ErrRefreshTokenRevoked
	}
	return refreshToken, nil
}

func (m *mockRefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	refreshToken, ok := m.tokens[token]
	if !ok {
		return repository.ErrRefreshTokenNotFound
	}
	refreshToken.Revoked = true
	return nil
}

// mockNotifier records emitted notifications without touching storage.
type mockNotifier struct {
	emitted []*domain.Notification
}

func (m *mockNotifier) Emit(ctx context.Context, typ domain.NotificationType, title, message string, relatedID *int64) (*domain.Notification, error) {
	notification := &domain.Notification{
		Title:     title,
		Message:   message,
		Type:      typ,
		RelatedID: relatedID,
	}
	m.emitted = append(m.emitted, notification)
	return notification, nil
}

func (m *mockNotifier) List(ctx context.Context) ([]*domain.Notification, error) {
	return m.emitted, nil
}

func (m *mockNotifier) ListUnread(ctx context.Context) ([]*domain.Notification, error) {
	return m.emitted, nil
}

func (m *mockNotifier) MarkAsRead(ctx context.Context, id int64) error {
	return nil
}
