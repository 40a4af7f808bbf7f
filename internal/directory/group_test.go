package directory

import (
	"testing"
)

func TestCalculateGroupType(t *testing.T) {
	tests := []struct {
		name     string
		scope    GroupScope
		category GroupCategory
		want     int32
	}{
		{name: "global security", scope: GroupScopeGlobal, category: GroupCategorySecurity, want: -2147483646},
		{name: "global distribution", scope: GroupScopeGlobal, category: GroupCategoryDistribution, want: 2},
		{name: "domain local security", scope: GroupScopeDomainLocal, category: GroupCategorySecurity, want: -2147483644},
		{name: "universal security", scope: GroupScopeUniversal, category: GroupCategorySecurity, want: -2147483640},
		{name: "universal distribution", scope: GroupScopeUniversal, category: GroupCategoryDistribution, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateGroupType(tt.scope, tt.category); got != tt.want {
				t.Errorf("CalculateGroupType(%s, %s) = %d, want %d", tt.scope, tt.category, got, tt.want)
			}
		})
	}
}

func TestParseGroupTypeRoundTrip(t *testing.T) {
	scopes := []GroupScope{GroupScopeGlobal, GroupScopeDomainLocal, GroupScopeUniversal}
	categories := []GroupCategory{GroupCategorySecurity, GroupCategoryDistribution}

	for _, scope := range scopes {
		for _, category := range categories {
			gotScope, gotCategory := ParseGroupType(CalculateGroupType(scope, category))
			if gotScope != scope || gotCategory != category {
				t.Errorf("round trip (%s, %s) = (%s, %s)", scope, category, gotScope, gotCategory)
			}
		}
	}
}

func TestGroupRequestValidate(t *testing.T) {
	valid := func() *GroupRequest {
		return &GroupRequest{
			Name:      "Sales",
			Container: "CN=Users,DC=example,DC=com",
			Scope:     GroupScopeGlobal,
			Category:  GroupCategorySecurity,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*GroupRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *GroupRequest) {}},
		{name: "missing name", mutate: func(r *GroupRequest) { r.Name = "" }, wantErr: true},
		{name: "missing container", mutate: func(r *GroupRequest) { r.Container = "" }, wantErr: true},
		{name: "bad scope", mutate: func(r *GroupRequest) { r.Scope = "Galactic" }, wantErr: true},
		{name: "bad category", mutate: func(r *GroupRequest) { r.Category = "Hybrid" }, wantErr: true},
		{name: "invalid characters", mutate: func(r *GroupRequest) { r.Name = "Sales;Drop" }, wantErr: true},
		{name: "space allowed", mutate: func(r *GroupRequest) { r.Name = "All Staff" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	var nilReq *GroupRequest
	if err := nilReq.Validate(); err == nil {
		t.Error("Validate() on nil request succeeded")
	}
}

func TestGroupRequestDN(t *testing.T) {
	req := &GroupRequest{Name: "Sales", Container: "CN=Users,DC=example,DC=com"}
	if got := req.DN(); got != "CN=Sales,CN=Users,DC=example,DC=com" {
		t.Errorf("DN() = %q", got)
	}
}
