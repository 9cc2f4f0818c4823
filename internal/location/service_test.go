package location

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"area-profile/internal/providers/postcodes"
)

type mockProvider struct {
	resp     *postcodes.LookupAPIResponse
	err      error
	lastSeen string
}

func (m *mockProvider) Lookup(ctx context.Context, postcode string) (*postcodes.LookupAPIResponse, error) {
	m.lastSeen = postcode
	return m.resp, m.err
}

func lookupResponse() *postcodes.LookupAPIResponse {
	resp := &postcodes.LookupAPIResponse{Status: 200}
	resp.Result.Postcode = "SW1A 1AA"
	resp.Result.Latitude = 51.501
	resp.Result.Longitude = -0.1416
	resp.Result.AdminDistrict = "Westminster"
	resp.Result.Region = "London"
	resp.Result.Country = "England"
	resp.Result.AdminWard = "St James's"
	return resp
}

func TestLocationService_Resolve(t *testing.T) {
	mock := &mockProvider{resp: lookupResponse()}
	svc := NewServiceWithProvider(mock, slog.Default())

	got, err := svc.Resolve(context.Background(), "  sw1a   1aa ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.lastSeen != "sw1a 1aa" {
		t.Errorf("provider saw %q, want whitespace-normalized sw1a 1aa", mock.lastSeen)
	}
	if got.Postcode != "SW1A 1AA" {
		t.Errorf("Postcode = %q, want canonical SW1A 1AA", got.Postcode)
	}
	if got.Lat != 51.501 || got.Lng != -0.1416 {
		t.Errorf("coordinates = %f,%f", got.Lat, got.Lng)
	}
	if got.AdminDistrict != "Westminster" {
		t.Errorf("AdminDistrict = %q", got.AdminDistrict)
	}
}

func TestLocationService_Resolve_NotFound(t *testing.T) {
	svc := NewServiceWithProvider(&mockProvider{err: postcodes.ErrNotFound}, slog.Default())

	_, err := svc.Resolve(context.Background(), "ZZ1 1ZZ")
	if !errors.Is(err, ErrPostcodeNotFound) {
		t.Fatalf("err = %v, want ErrPostcodeNotFound", err)
	}
}

func TestLocationService_Resolve_UpstreamError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewServiceWithProvider(&mockProvider{err: boom}, slog.Default())

	_, err := svc.Resolve(context.Background(), "SW1A 1AA")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want upstream error", err)
	}
	if errors.Is(err, ErrPostcodeNotFound) {
		t.Fatal("transient failure must not map to ErrPostcodeNotFound")
	}
}
