package transaction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/bizkhata/bizkhata-backend/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db       *gorm.DB
	business database.Business
	user     database.User
	customer database.Contact
	vendor   database.Contact
	widget   database.Product
	gadget   database.Product
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	env := &testEnv{db: db}

	env.business = database.Business{Name: "Test Traders", Email: "owner@test.example"}
	if err := db.Create(&env.business).Error; err != nil {
		t.Fatalf("failed to seed business: %v", err)
	}

	env.user = database.User{
		BusinessID: env.business.ID,
		Email:      "owner@test.example",
		Name:       "Owner",
		Role:       "owner",
		IsActive:   true,
	}
	if err := db.Create(&env.user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	env.customer = database.Contact{
		BusinessID: env.business.ID,
		Name:       "Ravi Kumar",
		Type:       "customer",
		IsActive:   true,
	}
	env.vendor = database.Contact{
		BusinessID: env.business.ID,
		Name:       "Sharma Wholesale",
		Type:       "vendor",
		IsActive:   true,
	}
	if err := db.Create(&env.customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	if err := db.Create(&env.vendor).Error; err != nil {
		t.Fatalf("failed to seed vendor: %v", err)
	}

	env.widget = database.Product{
		BusinessID:    env.business.ID,
		Name:          "Widget",
		Price:         100,
		StockQty:      10,
		MinStockLevel: 2,
		HSN:           "8473",
		CGST:          9,
		SGST:          9,
		IsActive:      true,
	}
	env.gadget = database.Product{
		BusinessID:    env.business.ID,
		Name:          "Gadget",
		Price:         50,
		StockQty:      5,
		MinStockLevel: 2,
		IsActive:      true,
	}
	if err := db.Create(&env.widget).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	if err := db.Create(&env.gadget).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}

	return env
}

// router wires the transaction routes behind a stub auth middleware that
// injects the given identity
func (e *testEnv) router(businessID, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("business_id", businessID.String())
		c.Set("user_id", userID.String())
		c.Set("role", "owner")
		c.Next()
	})

	h := NewHandler(e.db)
	r.GET("/transactions", h.List)
	r.POST("/transactions", h.Create)
	r.GET("/transactions/sales", h.GetSales)
	r.GET("/transactions/purchases", h.GetPurchases)
	r.GET("/transactions/summary", h.GetSummary)
	r.GET("/transactions/:id", h.Get)
	r.PATCH("/transactions/:id/status", h.UpdateStatus)
	r.PATCH("/transactions/:id/print", h.UpdatePrint)
	r.POST("/transactions/:id/payments", h.AddPayment)
	return r
}

func (e *testEnv) do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func txFromResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no data object: %v", body)
	}
	tx, ok := data["transaction"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no transaction object: %v", data)
	}
	return tx
}

func (e *testEnv) reloadProduct(t *testing.T, id uuid.UUID) database.Product {
	t.Helper()
	var p database.Product
	if err := e.db.First(&p, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload product: %v", err)
	}
	return p
}

func (e *testEnv) reloadContact(t *testing.T, id uuid.UUID) database.Contact {
	t.Helper()
	var c database.Contact
	if err := e.db.First(&c, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload contact: %v", err)
	}
	return c
}

func TestCreateSaleAdjustsStockAndBalance(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	w := env.do(t, r, "POST", "/transactions", gin.H{
		"type":       "sale",
		"customerId": env.customer.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 3, "price": 100},
		},
		"subtotal":       300.0,
		"cgst":           27.0,
		"sgst":           27.0,
		"totalAmount":    354.0,
		"initialPayment": 100.0,
		"paymentMethod":  "upi",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	tx := txFromResponse(t, w)
	if tx["totalAmount"].(float64) != 354 {
		t.Errorf("totalAmount = %v, want 354", tx["totalAmount"])
	}
	if tx["paidAmount"].(float64) != 100 {
		t.Errorf("paidAmount = %v, want 100", tx["paidAmount"])
	}
	if tx["status"].(string) != "pending" {
		t.Errorf("status = %v, want pending", tx["status"])
	}

	now := time.Now()
	wantInvoice := fmt.Sprintf("%02d%d-00001", int(now.Month()), now.Year())
	if tx["invoiceNumber"].(string) != wantInvoice {
		t.Errorf("invoiceNumber = %v, want %s", tx["invoiceNumber"], wantInvoice)
	}

	items, ok := tx["products"].([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("expected 1 line item, got %v", tx["products"])
	}
	item := items[0].(map[string]interface{})
	if item["productName"].(string) != "Widget" {
		t.Errorf("productName = %v, want Widget", item["productName"])
	}
	if item["HSN"].(string) != "8473" {
		t.Errorf("HSN = %v, want 8473", item["HSN"])
	}

	payments := tx["payments"].([]interface{})
	if len(payments) != 1 {
		t.Fatalf("expected 1 payment record, got %d", len(payments))
	}
	if note := payments[0].(map[string]interface{})["note"].(string); note != "Initial Payment" {
		t.Errorf("payment note = %q, want Initial Payment", note)
	}

	if got := env.reloadProduct(t, env.widget.ID).StockQty; got != 7 {
		t.Errorf("widget stock = %d, want 7", got)
	}
	if got := env.reloadContact(t, env.customer.ID).CurrentBalance; got != 254 {
		t.Errorf("customer balance = %v, want 254", got)
	}
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	w := env.do(t, r, "POST", "/transactions", gin.H{
		"type":       "sale",
		"customerId": env.customer.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 20, "price": 100},
		},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if matched, _ := regexp.MatchString(`^Insufficient stock for product Widget`, body["message"].(string)); !matched {
		t.Errorf("unexpected message: %v", body["message"])
	}

	if got := env.reloadProduct(t, env.widget.ID).StockQty; got != 10 {
		t.Errorf("widget stock = %d, want 10 (unchanged)", got)
	}
	var count int64
	env.db.Model(&database.Transaction{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no transactions, found %d", count)
	}
}

func TestCreateSaleRollsBackEarlierItems(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	// First item succeeds, second fails: the first decrement must be
	// rolled back with everything else
	w := env.do(t, r, "POST", "/transactions", gin.H{
		"type":       "sale",
		"customerId": env.customer.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 2, "price": 100},
			{"productId": env.gadget.ID, "quantity": 50, "price": 50},
		},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if got := env.reloadProduct(t, env.widget.ID).StockQty; got != 10 {
		t.Errorf("widget stock = %d, want 10 after rollback", got)
	}
	if got := env.reloadProduct(t, env.gadget.ID).StockQty; got != 5 {
		t.Errorf("gadget stock = %d, want 5 after rollback", got)
	}
	if got := env.reloadContact(t, env.customer.ID).CurrentBalance; got != 0 {
		t.Errorf("customer balance = %v, want 0 after rollback", got)
	}
}

func TestCreateSaleContactValidation(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	w := env.do(t, r, "POST", "/transactions", gin.H{
		"type": "sale",
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 1, "price": 100},
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing customer: expected 400, got %d", w.Code)
	}

	w = env.do(t, r, "POST", "/transactions", gin.H{
		"type":       "sale",
		"customerId": uuid.New(),
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 1, "price": 100},
		},
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown customer: expected 404, got %d", w.Code)
	}

	// A vendor cannot play the customer role
	w = env.do(t, r, "POST", "/transactions", gin.H{
		"type":       "sale",
		"customerId": env.vendor.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 1, "price": 100},
		},
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("vendor as customer: expected 404, got %d", w.Code)
	}
}

func TestCreatePurchaseIncreasesStock(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	w := env.do(t, r, "POST", "/transactions", gin.H{
		"type":     "purchase",
		"vendorId": env.vendor.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 15, "price": 60},
		},
		"subtotal":    900.0,
		"totalAmount": 900.0,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"].(string) != "Purchase recorded successfully" {
		t.Errorf("message = %v", body["message"])
	}

	if got := env.reloadProduct(t, env.widget.ID).StockQty; got != 25 {
		t.Errorf("widget stock = %d, want 25", got)
	}
	// Unpaid purchases do not accrue on the vendor balance
	if got := env.reloadContact(t, env.vendor.ID).CurrentBalance; got != 0 {
		t.Errorf("vendor balance = %v, want 0", got)
	}
}

func TestCreateFullyPaidSaleIsCompleted(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	w := env.do(t, r, "POST", "/transactions", gin.H{
		"type":       "sale",
		"customerId": env.customer.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 1, "price": 100},
		},
		"subtotal":       100.0,
		"totalAmount":    100.0,
		"initialPayment": 100.0,
		"status":         "pending",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	tx := txFromResponse(t, w)
	if tx["status"].(string) != "completed" {
		t.Errorf("status = %v, want completed for fully paid sale", tx["status"])
	}
	if got := env.reloadContact(t, env.customer.ID).CurrentBalance; got != 0 {
		t.Errorf("customer balance = %v, want 0", got)
	}
}

func TestCreateComputesTotalsWhenOmitted(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	w := env.do(t, r, "POST", "/transactions", gin.H{
		"type":       "sale",
		"customerId": env.customer.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 2, "price": 100},
			{"productId": env.gadget.ID, "quantity": 1, "price": 50},
		},
		"discount": 10.0,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	tx := txFromResponse(t, w)
	if tx["subtotal"].(float64) != 250 {
		t.Errorf("subtotal = %v, want 250 (computed from items)", tx["subtotal"])
	}
	if tx["totalAmount"].(float64) != 240 {
		t.Errorf("totalAmount = %v, want 240 (subtotal - discount)", tx["totalAmount"])
	}
}

func TestInvoiceNumbersIncrementWithinMonth(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	var invoices []string
	for i := 0; i < 3; i++ {
		w := env.do(t, r, "POST", "/transactions", gin.H{
			"type":       "sale",
			"customerId": env.customer.ID,
			"products": []gin.H{
				{"productId": env.widget.ID, "quantity": 1, "price": 100},
			},
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create %d: expected 201, got %d: %s", i, w.Code, w.Body.String())
		}
		invoices = append(invoices, txFromResponse(t, w)["invoiceNumber"].(string))
	}

	now := time.Now()
	prefix := fmt.Sprintf("%02d%d", int(now.Month()), now.Year())
	for i, inv := range invoices {
		want := fmt.Sprintf("%s-%05d", prefix, i+1)
		if inv != want {
			t.Errorf("invoice %d = %s, want %s", i, inv, want)
		}
	}
}

func TestInvoiceNumbersRestartEachMonth(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	now := time.Now()
	lastMonth := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	prior := database.Transaction{
		BusinessID:    env.business.ID,
		Type:          "sale",
		InvoiceNumber: fmt.Sprintf("%02d%d-00007", int(lastMonth.Month()), lastMonth.Year()),
		CustomerID:    &env.customer.ID,
		Subtotal:      100,
		TotalAmount:   100,
		Status:        "completed",
		Date:          lastMonth,
	}
	if err := env.db.Create(&prior).Error; err != nil {
		t.Fatalf("failed to seed prior month transaction: %v", err)
	}

	w := env.do(t, r, "POST", "/transactions", gin.H{
		"type":       "sale",
		"customerId": env.customer.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 1, "price": 100},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	want := fmt.Sprintf("%02d%d-00001", int(now.Month()), now.Year())
	if inv := txFromResponse(t, w)["invoiceNumber"].(string); inv != want {
		t.Errorf("invoice = %s, want %s", inv, want)
	}
}

func TestAddPaymentFlow(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	w := env.do(t, r, "POST", "/transactions", gin.H{
		"type":       "sale",
		"customerId": env.customer.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 3, "price": 100},
		},
		"subtotal":       300.0,
		"cgst":           27.0,
		"sgst":           27.0,
		"totalAmount":    354.0,
		"initialPayment": 100.0,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	txID := txFromResponse(t, w)["id"].(string)

	// Overpayment is rejected
	w = env.do(t, r, "POST", "/transactions/"+txID+"/payments", gin.H{"amount": 300.0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("overpayment: expected 400, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if matched, _ := regexp.MatchString(`exceeds remaining balance`, body["message"].(string)); !matched {
		t.Errorf("unexpected message: %v", body["message"])
	}

	// Paying the exact remainder completes the transaction
	w = env.do(t, r, "POST", "/transactions/"+txID+"/payments", gin.H{"amount": 254.0, "method": "upi"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	tx := txFromResponse(t, w)
	if tx["status"].(string) != "completed" {
		t.Errorf("status = %v, want completed", tx["status"])
	}
	if tx["paidAmount"].(float64) != 354 {
		t.Errorf("paidAmount = %v, want 354", tx["paidAmount"])
	}
	if got := env.reloadContact(t, env.customer.ID).CurrentBalance; got != 0 {
		t.Errorf("customer balance = %v, want 0", got)
	}

	// A completed transaction has no remaining balance to pay into
	w = env.do(t, r, "POST", "/transactions/"+txID+"/payments", gin.H{"amount": 1.0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("payment on settled transaction: expected 400, got %d", w.Code)
	}
}

func TestAddPaymentRejectsNonPositiveAmount(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	w := env.do(t, r, "POST", "/transactions", gin.H{
		"type":       "sale",
		"customerId": env.customer.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 1, "price": 100},
		},
	})
	txID := txFromResponse(t, w)["id"].(string)

	for _, amount := range []float64{0, -50} {
		w = env.do(t, r, "POST", "/transactions/"+txID+"/payments", gin.H{"amount": amount})
		if w.Code != http.StatusBadRequest {
			t.Errorf("amount %v: expected 400, got %d", amount, w.Code)
		}
	}
}

func TestUpdateStatus(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	w := env.do(t, r, "POST", "/transactions", gin.H{
		"type":       "sale",
		"customerId": env.customer.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 1, "price": 100},
		},
	})
	txID := txFromResponse(t, w)["id"].(string)

	w = env.do(t, r, "PATCH", "/transactions/"+txID+"/status", gin.H{"status": "shipped"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid status: expected 400, got %d", w.Code)
	}

	w = env.do(t, r, "PATCH", "/transactions/"+uuid.New().String()+"/status", gin.H{"status": "cancelled"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown transaction: expected 404, got %d", w.Code)
	}

	w = env.do(t, r, "PATCH", "/transactions/"+txID+"/status", gin.H{"status": "cancelled"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := txFromResponse(t, w)["status"].(string); got != "cancelled" {
		t.Errorf("status = %v, want cancelled", got)
	}
}

func TestUpdatePrintDefaultsToTrue(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	w := env.do(t, r, "POST", "/transactions", gin.H{
		"type":       "sale",
		"customerId": env.customer.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 1, "price": 100},
		},
	})
	txID := txFromResponse(t, w)["id"].(string)

	w = env.do(t, r, "PATCH", "/transactions/"+txID+"/print", gin.H{})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := txFromResponse(t, w)["isPrinted"].(bool); !got {
		t.Error("isPrinted = false, want true")
	}

	w = env.do(t, r, "PATCH", "/transactions/"+txID+"/print", gin.H{"isPrinted": false})
	if got := txFromResponse(t, w)["isPrinted"].(bool); got {
		t.Error("isPrinted = true, want false")
	}
}

func TestSummaryProfitLoss(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	env.do(t, r, "POST", "/transactions", gin.H{
		"type":       "sale",
		"customerId": env.customer.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 5, "price": 100},
		},
		"subtotal":    500.0,
		"totalAmount": 500.0,
	})
	env.do(t, r, "POST", "/transactions", gin.H{
		"type":     "purchase",
		"vendorId": env.vendor.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 4, "price": 50},
		},
		"subtotal":    200.0,
		"totalAmount": 200.0,
	})

	w := env.do(t, r, "GET", "/transactions/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	summary := body["data"].(map[string]interface{})["summary"].(map[string]interface{})
	if got := summary["profitLoss"].(float64); got != 300 {
		t.Errorf("profitLoss = %v, want 300", got)
	}
	sales := summary["sales"].(map[string]interface{})
	if got := sales["totalAmount"].(float64); got != 500 {
		t.Errorf("sales total = %v, want 500", got)
	}
	if got := sales["transactionCount"].(float64); got != 1 {
		t.Errorf("sales count = %v, want 1", got)
	}
}

func TestListPagination(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	for i := 0; i < 5; i++ {
		w := env.do(t, r, "POST", "/transactions", gin.H{
			"type":       "sale",
			"customerId": env.customer.ID,
			"products": []gin.H{
				{"productId": env.widget.ID, "quantity": 1, "price": 100},
			},
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create %d failed: %s", i, w.Body.String())
		}
	}

	w := env.do(t, r, "GET", "/transactions?page=2&limit=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	transactions := data["transactions"].([]interface{})
	if len(transactions) != 2 {
		t.Errorf("expected 2 transactions on page 2, got %d", len(transactions))
	}
	pagination := data["pagination"].(map[string]interface{})
	if got := pagination["total"].(float64); got != 5 {
		t.Errorf("total = %v, want 5", got)
	}
	if got := pagination["pages"].(float64); got != 3 {
		t.Errorf("pages = %v, want 3", got)
	}
	if got := pagination["current"].(float64); got != 2 {
		t.Errorf("current = %v, want 2", got)
	}
}

func TestBusinessScoping(t *testing.T) {
	env := setupEnv(t)
	r := env.router(env.business.ID, env.user.ID)

	w := env.do(t, r, "POST", "/transactions", gin.H{
		"type":       "sale",
		"customerId": env.customer.ID,
		"products": []gin.H{
			{"productId": env.widget.ID, "quantity": 1, "price": 100},
		},
	})
	txID := txFromResponse(t, w)["id"].(string)

	other := database.Business{Name: "Other Traders", Email: "other@test.example"}
	if err := env.db.Create(&other).Error; err != nil {
		t.Fatalf("failed to seed second business: %v", err)
	}
	otherRouter := env.router(other.ID, env.user.ID)

	w = env.do(t, otherRouter, "GET", "/transactions/"+txID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("cross-business read: expected 404, got %d", w.Code)
	}

	w = env.do(t, otherRouter, "GET", "/transactions", nil)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	if transactions, ok := data["transactions"].([]interface{}); ok && len(transactions) != 0 {
		t.Errorf("cross-business list: expected 0 transactions, got %d", len(transactions))
	}
}
