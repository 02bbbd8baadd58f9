package main

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestBearerToken(t *testing.T) {
	tt := []struct {
		headers map[string]string
		want    string
		wantErr bool
	}{
		{map[string]string{"Authorization": "Bearer abc.def.ghi"}, "abc.def.ghi", false},
		{map[string]string{"authorization": "Bearer abc.def.ghi"}, "abc.def.ghi", false},
		{map[string]string{"Authorization": "abc.def.ghi"}, "", true},
		{map[string]string{"Authorization": "Basic dXNlcg=="}, "", true},
		{map[string]string{}, "", true},
	}

	for _, tc := range tt {
		got, err := bearerToken(tc.headers)
		if tc.wantErr {
			if err == nil {
				t.Errorf("headers %v: expected error", tc.headers)
			}
			continue
		}
		if err != nil {
			t.Errorf("headers %v: unexpected error %s", tc.headers, err)
		}
		if got != tc.want {
			t.Errorf("headers %v: expected '%s' got '%s'", tc.headers, tc.want, got)
		}
	}
}

func TestGeneratePolicyCarriesEmailContext(t *testing.T) {
	res := generatePolicy("user", "Allow", "*", jwt.MapClaims{"email": "ops@stockpilot.ng"})

	if res.PrincipalID != "user" {
		t.Errorf("unexpected principal '%s'", res.PrincipalID)
	}
	if got := res.Context["email"]; got != "ops@stockpilot.ng" {
		t.Errorf("expected email in authorizer context, got %v", got)
	}
	if len(res.PolicyDocument.Statement) != 1 || res.PolicyDocument.Statement[0].Effect != "Allow" {
		t.Errorf("unexpected policy document %+v", res.PolicyDocument)
	}
}
