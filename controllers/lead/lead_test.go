package leadController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"jbp/config"
	"jbp/database"
	"jbp/models"
	"jbp/utils"
	leadValidators "jbp/validators/lead"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Lead{}))

	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	database.Database = database.DbInstance{Db: db}

	return db
}

func submitLead(t *testing.T, app *fiber.App, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/leads/create", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateLeadNotifiesAdmins(t *testing.T) {
	db := setupTestDb(t)

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	mailer := utils.NewMailer(utils.MailerConfig{ApiKey: "test-key", ApiURL: server.URL})
	notifier := utils.NewLeadNotifier(mailer, utils.NotifierConfig{
		AdminEmail: "admin@jodhpurpg.com",
		AdminUsers: []string{"owner@jodhpurpg.com", "admin@jodhpurpg.com"},
	})

	app := fiber.New()
	app.Post("/leads/create", leadValidators.CreateLead(), CreateLead(notifier))

	resp := submitLead(t, app, fiber.Map{"name": "Rahul Sharma", "mobile": "9876543210"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Deduplicated recipient set issues exactly 2 gateway calls
	assert.Equal(t, 2, calls)

	var lead models.Lead
	require.NoError(t, db.First(&lead).Error)
	assert.Equal(t, "Rahul Sharma", lead.Name)
	assert.Equal(t, "9876543210", lead.Mobile)
}

func TestCreateLeadSucceedsWhenNotificationsFail(t *testing.T) {
	db := setupTestDb(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	mailer := utils.NewMailer(utils.MailerConfig{ApiKey: "test-key", ApiURL: server.URL})
	notifier := utils.NewLeadNotifier(mailer, utils.NotifierConfig{
		AdminEmail: "admin@jodhpurpg.com",
	})

	app := fiber.New()
	app.Post("/leads/create", leadValidators.CreateLead(), CreateLead(notifier))

	// Lead creation succeeds independent of notification outcome
	resp := submitLead(t, app, fiber.Map{"name": "Rahul Sharma", "mobile": "9876543210"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	db.Model(&models.Lead{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateLeadRejectsInvalidMobile(t *testing.T) {
	setupTestDb(t)

	mailer := utils.NewMailer(utils.MailerConfig{})
	notifier := utils.NewLeadNotifier(mailer, utils.NotifierConfig{})

	app := fiber.New()
	app.Post("/leads/create", leadValidators.CreateLead(), CreateLead(notifier))

	resp := submitLead(t, app, fiber.Map{"name": "Rahul Sharma", "mobile": "12345"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
