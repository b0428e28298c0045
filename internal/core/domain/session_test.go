package domain

import "testing"

func TestParseProfile(t *testing.T) {
	profile, ok := ParseProfile([]byte(`{"role":"super_admin","name":"Ada","image":"/ada.png","extra":1}`))
	if !ok {
		t.Fatalf("expected profile to parse")
	}
	if profile.Role != RoleSuperAdmin {
		t.Fatalf("unexpected role: %s", profile.Role)
	}
	if profile.Name != "Ada" || profile.Image != "/ada.png" {
		t.Fatalf("unexpected fields: %+v", profile)
	}
	if len(profile.Raw) == 0 {
		t.Fatalf("raw document not preserved")
	}
}

func TestParseProfile_MissingRole(t *testing.T) {
	if _, ok := ParseProfile([]byte(`{"name":"Ada"}`)); ok {
		t.Fatalf("profile without role should not parse")
	}
}

func TestParseProfile_MalformedJSON(t *testing.T) {
	if _, ok := ParseProfile([]byte(`{not json`)); ok {
		t.Fatalf("malformed document should not parse")
	}
}

func TestSnapshot_Authenticated(t *testing.T) {
	p := &Profile{Role: RoleAdminHead}

	cases := []struct {
		name string
		snap Snapshot
		want bool
	}{
		{"both present", Snapshot{Credential: "tok", Profile: p}, true},
		{"credential only", Snapshot{Credential: "tok"}, false},
		{"profile only", Snapshot{Profile: p}, false},
		{"empty", Snapshot{}, false},
	}

	for _, tc := range cases {
		if got := tc.snap.Authenticated(); got != tc.want {
			t.Fatalf("%s: Authenticated() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSnapshot_AuthorizedFor(t *testing.T) {
	allowed := Snapshot{Credential: "tok", Profile: &Profile{Role: RoleCustomerService}}
	if !allowed.AuthorizedFor(DashboardPolicy) {
		t.Fatalf("customer service role should pass the dashboard policy")
	}
	if allowed.AuthorizedFor(LoginPolicy) {
		t.Fatalf("customer service role should fail the login policy")
	}

	absent := Snapshot{Credential: "tok"}
	if absent.AuthorizedFor(DashboardPolicy) {
		t.Fatalf("absent profile should never be authorized")
	}
}
