package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filament-tools/filament-page/internal/naming"
	"github.com/filament-tools/filament-page/internal/stubs"
)

func mustSpec(t *testing.T, name string) Spec {
	t.Helper()
	spec, err := ParseName(name)
	require.NoError(t, err)
	return spec
}

func mustResource(t *testing.T, name string, kind Kind) *Resource {
	t.Helper()
	res, err := ParseResource(name)
	require.NoError(t, err)
	require.NotNil(t, res)
	res.Kind = kind
	return res
}

func TestPlan_Standalone(t *testing.T) {
	target := Plan(DefaultLayout(), mustSpec(t, "Settings"), nil)

	assert.Equal(t, "app/Filament/Pages/Settings.php", target.FilePath)
	assert.Equal(t, "resources/views/filament/pages/settings.blade.php", target.ViewPath)
	assert.Equal(t, "filament.pages.settings", target.ViewID)
	assert.Equal(t, `App\Filament\Pages`, target.Namespace)
	assert.Equal(t, stubs.Page, target.Stub)
	assert.Equal(t, stubs.Tokens{
		"class":     "Settings",
		"namespace": `App\Filament\Pages`,
		"view":      "filament.pages.settings",
	}, target.Tokens)
	assert.Equal(t, []string{target.FilePath, target.ViewPath}, target.Files())
}

func TestPlan_StandaloneNested(t *testing.T) {
	target := Plan(DefaultLayout(), mustSpec(t, "Admin/SalesReport"), nil)

	assert.Equal(t, "app/Filament/Pages/Admin/SalesReport.php", target.FilePath)
	assert.Equal(t, "resources/views/filament/pages/admin/sales-report.blade.php", target.ViewPath)
	assert.Equal(t, "filament.pages.admin.sales-report", target.ViewID)
	assert.Equal(t, `App\Filament\Pages\Admin`, target.Tokens["namespace"])
	assert.Equal(t, "SalesReport", target.Tokens["class"])
}

func TestPlan_ViewIDMatchesSegments(t *testing.T) {
	for _, name := range []string{"Settings", "Admin/Reports", `Team\Billing\InvoiceHistory`, "Dashboard2"} {
		t.Run(name, func(t *testing.T) {
			spec := mustSpec(t, name)
			target := Plan(DefaultLayout(), spec, nil)

			var kebab []string
			for _, seg := range naming.Segments(spec.Name) {
				kebab = append(kebab, naming.Kebab(seg))
			}
			assert.Equal(t, "filament.pages."+strings.Join(kebab, "."), target.ViewID)
			assert.Equal(t,
				"resources/views/"+strings.ReplaceAll(target.ViewID, ".", "/")+ViewExtension,
				target.ViewPath)
		})
	}
}

func TestPlan_ResourceList(t *testing.T) {
	res := mustResource(t, "User", KindList)
	target := Plan(DefaultLayout(), mustSpec(t, "Index"), res)

	assert.Equal(t, "app/Filament/Resources/UserResource/Pages/Index.php", target.FilePath)
	assert.Empty(t, target.ViewPath)
	assert.Equal(t, []string{target.FilePath}, target.Files())
	assert.Equal(t, stubs.ResourcePage, target.Stub)
	assert.Equal(t, "UserResource", target.Tokens["resourceClass"])
	assert.Equal(t, "UserResource", target.Tokens["resource"])
	assert.Equal(t, "Index", target.Tokens["resourcePageClass"])
	assert.Equal(t, "ListRecords", target.Tokens["baseResourcePageClass"])
	assert.Equal(t, `Filament\Resources\Pages\ListRecords`, target.Tokens["baseResourcePage"])
	assert.Equal(t, `App\Filament\Resources\UserResource\Pages`, target.Tokens["namespace"])
	assert.Equal(t, `App\Filament\Resources`, target.Tokens["resourceNamespace"])
}

func TestPlan_ResourceCustom(t *testing.T) {
	res := mustResource(t, "UserResource", KindCustom)
	target := Plan(DefaultLayout(), mustSpec(t, "Reports/Activity"), res)

	assert.Equal(t, "app/Filament/Resources/UserResource/Pages/Reports/Activity.php", target.FilePath)
	assert.Equal(t, "filament.resources.user-resource.pages.reports.activity", target.ViewID)
	assert.Equal(t,
		"resources/views/filament/resources/user-resource/pages/reports/activity.blade.php",
		target.ViewPath)
	assert.Equal(t, stubs.CustomResourcePage, target.Stub)
	assert.Equal(t, `App\Filament\Resources\UserResource\Pages\Reports`, target.Tokens["namespace"])
	assert.Equal(t, "Page", target.Tokens["baseResourcePageClass"])
}

func TestPlan_ResourceAlwaysUnderResources(t *testing.T) {
	for _, kind := range []Kind{KindCustom, KindList, KindManage, KindCreate, KindEdit, KindView} {
		for _, name := range []string{"Index", "Admin/Stats"} {
			target := Plan(DefaultLayout(), mustSpec(t, name), mustResource(t, "Post", kind))
			assert.True(t, strings.HasPrefix(target.FilePath, "app/Filament/Resources/PostResource/Pages/"), target.FilePath)
			assert.False(t, strings.HasPrefix(target.FilePath, "app/Filament/Pages/"), target.FilePath)
			assert.Equal(t, kind.IsCustom(), target.ViewPath != "", "view only for custom pages")
		}
	}
}

func TestPlan_NestedResource(t *testing.T) {
	res := mustResource(t, "Shop/Product", KindEdit)
	target := Plan(DefaultLayout(), mustSpec(t, "EditProduct"), res)

	assert.Equal(t, "app/Filament/Resources/Shop/ProductResource/Pages/EditProduct.php", target.FilePath)
	assert.Equal(t, `Shop\ProductResource`, target.Tokens["resource"])
	assert.Equal(t, "ProductResource", target.Tokens["resourceClass"])
}

func TestPlan_CustomLayout(t *testing.T) {
	layout := Layout{AppPath: "src", ViewsPath: "templates", Namespace: `Acme\Admin`}
	target := Plan(layout, mustSpec(t, "Settings"), nil)

	assert.Equal(t, "src/Filament/Pages/Settings.php", target.FilePath)
	assert.Equal(t, "templates/filament/pages/settings.blade.php", target.ViewPath)
	assert.Equal(t, `Acme\Admin\Filament\Pages`, target.Namespace)
}
