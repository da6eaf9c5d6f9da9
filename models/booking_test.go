package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestCanTransition(t *testing.T) {
	statuses := []BookingStatus{StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled}

	allowed := map[BookingStatus][]BookingStatus{
		StatusScheduled:  {StatusConfirmed, StatusCancelled},
		StatusConfirmed:  {StatusInProgress, StatusCancelled},
		StatusInProgress: {StatusCompleted, StatusCancelled},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}

	if CanTransition("unknown", StatusConfirmed) {
		t.Error("unknown source status must not transition")
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []BookingStatus{StatusScheduled, StatusConfirmed, StatusInProgress} {
		if IsTerminal(s) {
			t.Errorf("%s must not be terminal", s)
		}
	}
	for _, s := range []BookingStatus{StatusCompleted, StatusCancelled} {
		if !IsTerminal(s) {
			t.Errorf("%s must be terminal", s)
		}
	}
}

func TestParseBookingStatus(t *testing.T) {
	if got, ok := ParseBookingStatus("in_progress"); !ok || got != StatusInProgress {
		t.Errorf("ParseBookingStatus(in_progress) = %q, %v", got, ok)
	}
	if _, ok := ParseBookingStatus("done"); ok {
		t.Error("unknown status must not parse")
	}
	if _, ok := ParseBookingStatus(""); ok {
		t.Error("empty status must not parse")
	}
}

func TestCanTransitionPayment(t *testing.T) {
	cases := []struct {
		from, to PaymentStatus
		want     bool
	}{
		{PaymentPending, PaymentPaid, true},
		{PaymentPaid, PaymentRefunded, true},
		{PaymentPending, PaymentRefunded, false},
		{PaymentPaid, PaymentPending, false},
		{PaymentRefunded, PaymentPaid, false},
		{PaymentRefunded, PaymentPending, false},
		{PaymentPending, PaymentPending, false},
	}
	for _, tc := range cases {
		if got := CanTransitionPayment(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransitionPayment(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestValidDocumentType(t *testing.T) {
	for _, ok := range []string{DocumentPrescription, DocumentReceipt, DocumentReport} {
		if !ValidDocumentType(ok) {
			t.Errorf("%q must be a valid document type", ok)
		}
	}
	if ValidDocumentType("selfie") || ValidDocumentType("") {
		t.Error("unknown document types must be rejected")
	}
}

func TestBookingBSONRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	in := Booking{
		ID:         "bkg-1",
		BusinessID: "vet-1",
		PetOwnerID: "owner-1",
		PetDetails: PetSnapshot{
			Name: "Rex", Breed: "beagle", Age: 4, Species: "dog", Weight: 12.5,
			MedicalHistory: "vaccinated",
		},
		AppointmentDetails: AppointmentDetails{
			Date: "2026-09-01", Time: "14:30", ServiceType: "checkup",
			Duration: DefaultDuration, Notes: "limping slightly",
		},
		Status: StatusCompleted,
		Pricing: Pricing{
			ServicePrice: 500, AdditionalCharges: 100, TotalAmount: 600,
			PaymentStatus: PaymentPaid,
		},
		Completion: &Completion{
			CompletedAt: now,
			Diagnosis:   "Mild sprain",
			Treatment:   "Rest",
			Prescription: Prescription{
				Medications:  []Medication{{Name: "Carprofen", Dosage: "25mg", Frequency: "twice daily", Duration: "5 days"}},
				Instructions: "With food",
			},
			FollowUpRequired: true,
			FollowUpDate:     "2026-09-15",
			Documents:        []Document{{Type: DocumentReport, URL: "https://cdn.example.com/r.pdf", UploadedAt: now}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	data, err := bson.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var out Booking
	if err := bson.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if out.ID != in.ID || out.BusinessID != in.BusinessID || out.PetOwnerID != in.PetOwnerID {
		t.Errorf("identity fields mismatch: %+v", out)
	}
	if out.Status != StatusCompleted || out.Pricing.PaymentStatus != PaymentPaid {
		t.Errorf("status fields mismatch: %+v", out)
	}
	if out.Pricing.TotalAmount != out.Pricing.ServicePrice+out.Pricing.AdditionalCharges {
		t.Errorf("pricing invariant broken after round trip: %+v", out.Pricing)
	}
	if out.PetDetails != in.PetDetails {
		t.Errorf("pet snapshot mismatch: %+v vs %+v", out.PetDetails, in.PetDetails)
	}
	if out.Completion == nil {
		t.Fatal("completion lost in round trip")
	}
	if out.Completion.Diagnosis != in.Completion.Diagnosis ||
		out.Completion.FollowUpDate != in.Completion.FollowUpDate ||
		len(out.Completion.Documents) != 1 {
		t.Errorf("completion mismatch: %+v", out.Completion)
	}
	if len(out.Completion.Prescription.Medications) != 1 ||
		out.Completion.Prescription.Medications[0].Name != "Carprofen" {
		t.Errorf("prescription mismatch: %+v", out.Completion.Prescription)
	}
}
