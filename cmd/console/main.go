// Command console wires the admin-console core end to end: it picks a
// snapshot store from the environment, rehydrates or fetches from the
// simulated origin, and reports the dashboard view-model. It exists to
// demonstrate the data flow; there is no network surface.
package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/ttran/storeadmin/internal/adapter/origin"
	"github.com/ttran/storeadmin/internal/adapter/storage"
	"github.com/ttran/storeadmin/internal/core/persist"
	"github.com/ttran/storeadmin/internal/core/service"
	"github.com/ttran/storeadmin/internal/core/view"
	"github.com/ttran/storeadmin/internal/port"
)

const defaultSnapshotPath = "./storeadmin.snapshot.json"

func main() {
	ctx := context.Background()

	repo, closeRepo := newSnapshotStore(ctx)
	defer closeRepo()

	st, rehydrated := persist.Rehydrate(ctx, repo)
	detach := persist.Attach(st, repo)
	defer detach()

	catalog := service.NewCatalogService(origin.NewProductSimulator(origin.SeedProducts()), st)
	orders := service.NewOrderService(origin.NewOrderSimulator(origin.SeedOrders()), st)

	if rehydrated {
		log.Println("rehydrated state from snapshot, skipping origin fetch")
	} else {
		log.Println("no snapshot found, fetching from origin")
		if err := catalog.Load(ctx); err != nil {
			log.Fatalf("load products: %v", err)
		}
		if err := orders.Load(ctx); err != nil {
			log.Fatalf("load orders: %v", err)
		}
	}

	state := st.State()
	dash := view.BuildDashboard(state.Products.Items, state.Orders.Items, time.Now())
	log.Printf("products: %d total, %d active", dash.Stats.TotalProducts, dash.Stats.ActiveProducts)
	log.Printf("orders: %d total, %d pending, revenue %.2f", dash.Stats.TotalOrders, dash.Stats.PendingOrders, dash.Stats.Revenue)
	for _, sc := range dash.StatusBreakdown {
		log.Printf("  %-9s %d", sc.Status, sc.Count)
	}
	for _, day := range dash.DailyOrders {
		if day.Count > 0 {
			log.Printf("  %s  %d order(s)", day.Date.Format("2006-01-02"), day.Count)
		}
	}

	pv := view.BuildProductsView(state.Products.Items, view.ProductsQuery{
		Sort:     view.SortSpec{Field: "name"},
		Page:     1,
		PageSize: 5,
	})
	log.Printf("categories: %v", pv.Categories)
	log.Printf("page %d/%d:", pv.Page.Number, pv.Page.TotalPages)
	for _, p := range pv.Page.Items {
		log.Printf("  %-22s %8.2f  %s", p.Name, p.Price, p.Status)
	}
}

func newSnapshotStore(ctx context.Context) (port.SnapshotStore, func()) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		log.Printf("snapshot store: redis at %s", addr)
		return storage.NewRedisAdapter(rdb), func() { rdb.Close() }
	}

	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			log.Fatalf("failed to connect mysql: %v", err)
		}
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("failed to ping mysql: %v", err)
		}
		adapter := storage.NewMySQLAdapter(db)
		if err := adapter.EnsureSchema(ctx); err != nil {
			log.Fatalf("failed to ensure schema: %v", err)
		}
		log.Println("snapshot store: mysql")
		return adapter, func() { db.Close() }
	}

	path := os.Getenv("SNAPSHOT_PATH")
	if path == "" {
		path = defaultSnapshotPath
	}
	log.Printf("snapshot store: file at %s", path)
	return storage.NewFileAdapter(path), func() {}
}
