package entity

import "testing"

func completeFarmerProfile() *FarmerProfile {
	return &FarmerProfile{
		FarmLocation:      "Melur Road",
		FarmSize:          2.5,
		FarmType:          FarmTypeCrop,
		YearsOfExperience: 5,
		Village:           "Melur",
		Taluk:             "Melur",
		District:          "Madurai",
		Pincode:           "600001",
	}
}

func TestFarmerProfileIsComplete(t *testing.T) {
	p := completeFarmerProfile()
	if !p.IsComplete() {
		t.Fatal("expected fully populated farmer profile to be complete")
	}

	p.Taluk = ""
	if p.IsComplete() {
		t.Error("expected profile missing taluk to be incomplete")
	}

	// Completeness flips back once the field is supplied.
	p.Taluk = "Melur"
	if !p.IsComplete() {
		t.Error("expected profile to be complete again after adding taluk")
	}

	p.YearsOfExperience = 0
	if p.IsComplete() {
		t.Error("expected zero years of experience to count as missing")
	}
}

func completeOwnerProfile() *OwnerProfile {
	return &OwnerProfile{
		BusinessType:        BusinessTypeIndividual,
		YearsInBusiness:     3,
		ServiceDistricts:    []string{"Madurai", "Theni"},
		MaxDeliveryDistance: 50,
		AddressLine1:        "12 Main Street",
		City:                "Madurai",
		District:            "Madurai",
		Pincode:             "625001",
	}
}

func TestOwnerProfileIsComplete(t *testing.T) {
	p := completeOwnerProfile()
	if !p.IsComplete() {
		t.Fatal("expected fully populated owner profile to be complete")
	}

	p.ServiceDistricts = nil
	if p.IsComplete() {
		t.Error("expected profile with no service districts to be incomplete")
	}
}

func TestOwnerProfileHasBankDetails(t *testing.T) {
	p := completeOwnerProfile()
	if p.HasBankDetails() {
		t.Error("expected no bank details on a fresh profile")
	}

	bank := "State Bank"
	holder := "R. Kumar"
	account := "123456789012"
	ifsc := "SBIN0001234"
	p.BankName = &bank
	p.AccountHolderName = &holder
	p.AccountNumber = &account

	if p.HasBankDetails() {
		t.Error("expected partial bank details to report false")
	}

	p.IFSCCode = &ifsc
	if !p.HasBankDetails() {
		t.Error("expected complete bank details to report true")
	}
}

func TestFullAddressSkipsEmptyParts(t *testing.T) {
	p := completeFarmerProfile()
	p.State = ""
	got := p.FullAddress()
	want := "Melur, Melur, Madurai, 600001"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
