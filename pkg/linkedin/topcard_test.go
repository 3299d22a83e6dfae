package linkedin

import "testing"

func TestExtractBadgesCountOrder(t *testing.T) {
	// The follower count can render before the connection count; neither
	// may be attributed to the other's label.
	page := `
<html><body>
<main class="scaffold-layout__main">
  <section class="artdeco-card">
    <h1 class="text-heading-xlarge">Ada Lovelace</h1>
    <ul>
      <li class="text-body-small"><span class="t-bold">1,234</span> followers</li>
      <li class="text-body-small"><span class="t-bold">500+</span> connections</li>
    </ul>
  </section>
</main>
</body></html>`

	badges := extractBadges(parseHTML(t, page))
	if badges.Connections != "500" {
		t.Errorf("Connections = %q, want %q", badges.Connections, "500")
	}
	if badges.Followers != "1234" {
		t.Errorf("Followers = %q, want %q", badges.Followers, "1234")
	}
}

func TestExtractBadgesFlags(t *testing.T) {
	page := `
<html><body>
<main class="scaffold-layout__main">
  <section class="artdeco-card">
    <span class="pv-member-badge--premium">Premium</span>
    <span>Open to work</span>
  </section>
</main>
</body></html>`

	badges := extractBadges(parseHTML(t, page))
	if !badges.Premium {
		t.Error("Premium = false, want true")
	}
	if !badges.OpenToWork {
		t.Error("OpenToWork = false, want true")
	}
	if badges.Hiring {
		t.Error("Hiring = true, want false")
	}
}
