package card

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	q := Defaults().QR
	assert.Equal(t, "website:https://example.com", Canonical(q))

	q.Type = QREmail
	q.Email = EmailQR{Address: "ada@example.com", Subject: "Hello"}
	assert.Equal(t, "email:ada@example.com|Hello|", Canonical(q))
}

func TestGeneratePattern_KnownBits(t *testing.T) {
	// "phone:+1-555-0100" sums to 1130; its low byte is 0b01101010.
	q := QR{Type: QRPhone, Phone: PhoneQR{Number: "+1-555-0100"}}
	want := [8]bool{false, true, false, true, false, true, true, false}

	p := GeneratePattern(q)
	for i := range p {
		assert.Equal(t, want[i%8], p[i], "cell %d", i)
	}
}

func TestGeneratePattern_Deterministic(t *testing.T) {
	e := New()
	e.UpdateQR(QRPatch{Type: Ptr(QRPhone)})
	e.UpdateQR(QRPatch{PhoneNumber: Ptr("+1-555-0100")})

	q := e.Snapshot().QR
	first := GeneratePattern(q)
	second := GeneratePattern(q)
	assert.Equal(t, first, second)
	assert.Equal(t, EncodePattern(first), EncodePattern(second))
	assert.Equal(t, e.Snapshot().QR.Code, e.Snapshot().QR.Code)
}

func TestGeneratePattern_InactivePayloadIgnored(t *testing.T) {
	q := Defaults().QR
	before := GeneratePattern(q)
	q.Email.Subject = "unrelated"
	q.Event.Title = "unrelated"
	assert.Equal(t, before, GeneratePattern(q))
}

func TestGeneratePattern_DistinctInputs(t *testing.T) {
	inputs := []QR{
		{Type: QRPhone, Phone: PhoneQR{Number: "+1-555-0100"}},
		{Type: QREmail, Email: EmailQR{Address: "ada@example.com", Subject: "Hello"}},
		{Type: QREmail, Email: EmailQR{Address: "ada@example.com", Subject: "Hellp"}},
		{Type: QRWebsite, Website: WebsiteQR{URL: "https://example.com"}},
		{Type: QRWebsite, Website: WebsiteQR{URL: "https://ada.dev"}},
		{Type: QRAR, AR: ARQR{MarkerURL: "https://example.com/ar"}},
		{Type: QRSMS, SMS: SMSQR{Number: "+1-555-0100", Message: "hi"}},
		{Type: QREvent, Event: EventQR{Title: "Launch", Location: "Lab", Start: "2026-01-01", End: "2026-01-02"}},
	}

	seen := map[Pattern]string{}
	for _, q := range inputs {
		p := GeneratePattern(q)
		if prev, ok := seen[p]; ok {
			t.Fatalf("%q collides with %q", Canonical(q), prev)
		}
		seen[p] = Canonical(q)
	}
}

func TestEncodePattern_IsPNGDataURI(t *testing.T) {
	handle := EncodePattern(GeneratePattern(Defaults().QR))
	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(string(handle), prefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(string(handle), prefix))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	side := (PatternSize + 2*quietZone) * moduleSize
	assert.Equal(t, side, img.Bounds().Dx())
	assert.Equal(t, side, img.Bounds().Dy())
}

func TestPattern_Filled(t *testing.T) {
	var p Pattern
	p[PatternSize+2] = true
	assert.True(t, p.Filled(1, 2))
	assert.False(t, p.Filled(2, 1))
	assert.False(t, p.Filled(-1, 0))
	assert.False(t, p.Filled(0, PatternSize))
}
