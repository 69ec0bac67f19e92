package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TruncateAllTables empties user data; seeded categories and job types stay.
func TruncateAllTables(t *testing.T, db *pgxpool.Pool, ctx context.Context) {
	tables := []string{
		"saved_jobs",
		"job_applications",
		"jobs",
		"users",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		require.NoError(t, err, "failed to truncate table %s", table)
	}
}

// CreateTestPNG encodes a solid width x height PNG.
func CreateTestPNG(t *testing.T, width int, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 120, B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func CreateMultipartFormData(t *testing.T, fieldName, fileName string, fileData []byte, fields map[string]string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err, "failed to create form file field")

	_, err = part.Write(fileData)
	require.NoError(t, err, "failed to write file data")

	for key, value := range fields {
		err = writer.WriteField(key, value)
		require.NoError(t, err, "failed to write form field %s", key)
	}

	err = writer.Close()
	require.NoError(t, err, "failed to close multipart writer")

	return body, writer.FormDataContentType()
}

func CreateJSONRequest(method, url string, jsonBody []byte) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func CreateAuthRequest(method, url string, jsonBody []byte, token string) *http.Request {
	req := CreateJSONRequest(method, url, jsonBody)
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	return req
}

func CreateAuthMultipartRequest(method, url string, body *bytes.Buffer, contentType string, token string) *http.Request {
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	return req
}

func ParseJSONResponse(t *testing.T, resp *http.Response) map[string]interface{} {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	require.NotEmpty(t, body, "response body should not be empty")

	var result map[string]interface{}
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "failed to parse JSON response: %s", string(body))

	return result
}

// Do sends req to app and returns the status code and decoded body.
func Do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]interface{}) {
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp.StatusCode, ParseJSONResponse(t, resp)
}

// RegisterAndLogin creates an account and returns its access token.
func RegisterAndLogin(t *testing.T, app *fiber.App, name, email, password string) string {
	reqBody := []byte(fmt.Sprintf(`{"name":"%s","email":"%s","password":"%s","confirm_password":"%s"}`, name, email, password, password))
	status, body := Do(t, app, CreateJSONRequest(http.MethodPost, "/api/auth/register", reqBody))
	require.Equal(t, fiber.StatusCreated, status, "register should succeed: %v", body)

	return Login(t, app, email, password)
}

func Login(t *testing.T, app *fiber.App, email, password string) string {
	reqBody := []byte(fmt.Sprintf(`{"email":"%s","password":"%s"}`, email, password))
	status, body := Do(t, app, CreateJSONRequest(http.MethodPost, "/api/auth/login", reqBody))
	require.Equal(t, fiber.StatusOK, status, "login should succeed: %v", body)

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response data should be an object")

	accessToken, ok := data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")
	require.NotEmpty(t, accessToken)

	return accessToken
}

var otpPattern = regexp.MustCompile(`(\d{6})\s*</p>`)

// GetOTPFromMailhog polls the MailHog API for the latest code sent to email.
func GetOTPFromMailhog(t *testing.T, mailhogURL, email string) string {
	apiURL := fmt.Sprintf("%s/api/v2/search?kind=to&query=%s", mailhogURL, email)

	for attempt := 0; attempt < 10; attempt++ {
		// #nosec G107 -- apiURL points at the MailHog test container
		resp, err := http.Get(apiURL)
		require.NoError(t, err, "failed to fetch messages from MailHog")

		var result struct {
			Items []struct {
				Content struct {
					Body string `json:"Body"`
				} `json:"Content"`
			} `json:"items"`
		}
		err = json.NewDecoder(resp.Body).Decode(&result)
		_ = resp.Body.Close()
		require.NoError(t, err, "failed to parse MailHog response")

		for _, item := range result.Items {
			body := strings.ReplaceAll(item.Content.Body, "=\r\n", "")
			matches := otpPattern.FindStringSubmatch(body)
			if len(matches) > 1 {
				return matches[1]
			}
		}

		time.Sleep(500 * time.Millisecond)
	}

	require.Fail(t, "OTP not found in MailHog", "email: %s", email)
	return ""
}

// GenerateRandomString returns lowercase letters and digits for test data.
func GenerateRandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)
	for i := range b {
		// #nosec G404 -- test data only
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
