package schema

import "testing"

func testHeader() []string {
	h := make([]string, 25)
	h[0] = "Timestamp"
	h[ColAge] = "What is your age? / Quel âge avez-vous ?"
	h[ColGender] = "Gender / Genre"
	h[ColSocialSciences] = "Do you study social sciences? / Étudiez-vous les sciences sociales ?"
	h[ColPlatform] = "Which platform do you use the most? / Quelle plateforme ?"
	h[ColTimeSpent] = "How much time do you spend on social media per day? / Combien de temps ?"
	h[ColContentTypes] = "What type of content do you see the most? / Quel type de contenu ?"
	h[ColEmotion] = "How does political content make you feel? / Comment vous sentez-vous ?"
	h[ColAlignment] = "Is the content aligned with your own opinions? / Aligné avec vos opinions ?"
	h[ColInfoSource] = "Where do you get political information? / Où ?"
	h[ColTrustedAccounts] = "Which accounts do you trust? / Quels comptes ?"
	methods := []string{
		"Signing petitions / Signer des pétitions",
		"Sharing activist media / Partager des médias activistes",
		"Joining a political party / Adhérer à un parti",
		"Attending protests / Manifester",
		"Contacting elected officials / Contacter des élus",
		"Voting / Voter",
		"Debating online / Débattre en ligne",
		"Staying informed / Rester informé",
	}
	for i, m := range methods {
		h[ColEngagementFirst+i] = "Rank the engagement methods [" + m + "]"
	}
	h[ColSocialFirst] = "Same-sex marriage / Mariage homosexuel"
	h[ColSocialFirst+1] = "Abortion / Avortement"
	h[ColSocialLast] = "Immigration / Immigration"
	h[ColEconomicFirst] = "Taxes on the wealthy / Impôts sur les riches"
	h[ColEconomicFirst+1] = "Public healthcare / Santé publique"
	h[ColEconomicLast] = "Income inequality / Inégalité des revenus"
	return h
}

func TestResolveValidates(t *testing.T) {
	if _, err := Resolve([]string{"a", "b"}); err == nil {
		t.Fatal("expected error for narrow header")
	}
	sc, err := Resolve(testHeader())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if sc.Columns() != 25 {
		t.Errorf("Columns = %d, want 25", sc.Columns())
	}
}

func TestEngagementMethodLabels(t *testing.T) {
	sc, err := Resolve(testHeader())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	methods := sc.EngagementMethods()
	if len(methods) != 8 {
		t.Fatalf("got %d methods, want 8", len(methods))
	}
	if methods[0].Label != "Signing petitions" {
		t.Errorf("first method label = %q", methods[0].Label)
	}
	if methods[5].Label != "Voting" {
		t.Errorf("sixth method label = %q", methods[5].Label)
	}
	for i, m := range methods {
		if m.Kind != Numeric {
			t.Errorf("method %d kind = %v, want numeric", i, m.Kind)
		}
		if m.Column != ColEngagementFirst+i {
			t.Errorf("method %d column = %d", i, m.Column)
		}
	}
}

func TestIdeologyDescriptors(t *testing.T) {
	sc, _ := Resolve(testHeader())
	social := sc.SocialIdeology()
	economic := sc.EconomicIdeology()
	if len(social) != 3 || len(economic) != 3 {
		t.Fatalf("got %d social and %d economic items, want 3 each", len(social), len(economic))
	}
	if social[0].Label != "Same-sex marriage" {
		t.Errorf("social[0] = %q", social[0].Label)
	}
	if economic[2].Label != "Income inequality" {
		t.Errorf("economic[2] = %q", economic[2].Label)
	}
	for _, d := range append(social, economic...) {
		if d.Kind != Likert {
			t.Errorf("%s kind = %v, want likert", d.Label, d.Kind)
		}
	}
}

func TestCorrelationVariables(t *testing.T) {
	sc, _ := Resolve(testHeader())
	vars := sc.CorrelationVariables()
	// time + 8 methods + 6 ideology items
	if len(vars) != 15 {
		t.Fatalf("got %d variables, want 15", len(vars))
	}
	if vars[0].Label != "Time Spent on Social Media" || vars[0].Kind != Time {
		t.Errorf("vars[0] = %+v", vars[0])
	}
}

func TestFieldByName(t *testing.T) {
	sc, _ := Resolve(testHeader())
	for _, name := range FieldNames() {
		if _, ok := sc.FieldByName(name); !ok {
			t.Errorf("FieldByName(%q) not found", name)
		}
	}
	if _, ok := sc.FieldByName("nope"); ok {
		t.Error("FieldByName accepted an unknown name")
	}
	d, _ := sc.FieldByName("time-spent")
	if d.Kind != Categorical {
		t.Errorf("time-spent field kind = %v, want categorical", d.Kind)
	}
	ec, _ := sc.FieldByName("emotion-compact")
	if ec.Column != ColEmotion || ec.Label != CompactEmotionLabel {
		t.Errorf("emotion-compact field = %+v", ec)
	}
}

func TestMultiSelect(t *testing.T) {
	for _, col := range []int{ColContentTypes, ColInfoSource, ColTrustedAccounts} {
		if !MultiSelect(col) {
			t.Errorf("MultiSelect(%d) = false", col)
		}
	}
	if MultiSelect(ColPlatform) {
		t.Error("platform is not multi-select")
	}
}
