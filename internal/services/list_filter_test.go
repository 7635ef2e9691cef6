package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wildsafari/internal/models/request_models"
)

type row struct {
	name   string
	status string
	n      int
}

var rowSpec = listSpec[row]{
	text:   func(r row) []string { return []string{r.name} },
	status: func(r row) string { return r.status },
	sorts: map[string]func(a, b row) int{
		"name": byString(func(r row) string { return r.name }),
		"n":    byNumber(func(r row) int { return r.n }),
	},
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.name
	}
	return out
}

func TestListSpecFiltersAndSorts(t *testing.T) {
	rows := []row{{"Kivu", "pending", 3}, {"akagera", "confirmed", 1}, {"Nyungwe", "pending", 2}}

	assert.Equal(t, []string{"Kivu", "akagera", "Nyungwe"}, names(rowSpec.apply(rows, request_models.ListQuery{})))
	assert.Equal(t, []string{"Kivu", "Nyungwe"}, names(rowSpec.apply(rows, request_models.ListQuery{Status: "PENDING"})))
	assert.Equal(t, []string{"Nyungwe"}, names(rowSpec.apply(rows, request_models.ListQuery{Q: "ngw"})))
	assert.Equal(t, []string{"akagera", "Kivu", "Nyungwe"}, names(rowSpec.apply(rows, request_models.ListQuery{Sort: "name"})))
	assert.Equal(t, []string{"Kivu", "Nyungwe", "akagera"}, names(rowSpec.apply(rows, request_models.ListQuery{Sort: "-n"})))
	assert.Equal(t, []string{"Kivu", "akagera", "Nyungwe"}, names(rowSpec.apply(rows, request_models.ListQuery{Sort: "bogus"})))

	assert.Equal(t, "Kivu", rows[0].name)
}
