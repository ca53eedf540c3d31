// internal/component/depot.go
package component

// Depot — точка сдачи ресурсов. Счётчик только растёт.
type Depot struct {
	Resources  int
	Deliveries int
}

// Deliver adds n to the accumulated total. Non-positive amounts are ignored.
func (d *Depot) Deliver(n int) {
	if n <= 0 {
		return
	}
	d.Resources += n
	d.Deliveries++
}
