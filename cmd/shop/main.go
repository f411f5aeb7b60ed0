package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"nazhan-shop/internal/cart"
	"nazhan-shop/internal/catalog"
	"nazhan-shop/internal/config"
	"nazhan-shop/internal/logger"
	"nazhan-shop/internal/order"
	"nazhan-shop/internal/session"
	"nazhan-shop/internal/store"
	"nazhan-shop/internal/ui"
)

// consoleUI is the presentation collaborator for the terminal host:
// notifications print as toasts, render requests are logged.
type consoleUI struct{}

func (consoleUI) Notify(message string, severity ui.Severity) {
	fmt.Printf("[%s] %s\n", severity, message)
}

func (consoleUI) Render(view ui.View) {
	ui.LogRenderer{}.Render(view)
}

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	console := consoleUI{}

	st, err := store.NewFileStore(cfg.DataDir, console)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot open data directory:", err)
		os.Exit(1)
	}

	sess := session.New(st, cfg, console, console)
	basket := cart.New(st, console, console)
	ledger := order.NewLedger(st, basket, sess, console, console, cfg.DeliveryFee, cfg.WhatsAppNumber)
	overlay := catalog.NewOverlay(st, sess, console)

	ctx := logger.WithSessionID(context.Background(), uuid.NewString())

	fmt.Println("Nazhan Zaatar Mill — type 'help' for commands")
	repl(ctx, os.Stdin, sess, basket, ledger, overlay)
}

func repl(
	ctx context.Context,
	in *os.File,
	sess *session.Session,
	basket *cart.Cart,
	ledger *order.Ledger,
	overlay *catalog.Overlay,
) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Printf("%s> ", sess.Current())
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch cmd, args := fields[0], fields[1:]; cmd {
		case "help":
			printHelp()

		case "products":
			for _, p := range overlay.All() {
				fmt.Printf("  %-24s %-20s %8d SYP\n", p.ID, p.Name, p.Price)
			}

		case "add":
			if len(args) < 1 {
				fmt.Println("usage: add <product-id> [qty]")
				continue
			}
			qty := 1
			if len(args) > 1 {
				qty, _ = strconv.Atoi(args[1])
			}
			product, ok := findProduct(overlay, args[0])
			if !ok {
				fmt.Println("unknown product:", args[0])
				continue
			}
			if _, err := basket.Add(ctx, product.ID, product.Name, product.Price, product.Image, qty); err != nil {
				fmt.Println("error:", err)
			}

		case "cart":
			for _, l := range basket.Lines() {
				fmt.Printf("  %-20s × %-3d %8d SYP\n", l.Name, l.Quantity, l.Total())
			}
			t := basket.Totals()
			fmt.Printf("  %d items, %d SYP\n", t.Items, t.Price)

		case "remove":
			if len(args) != 1 {
				fmt.Println("usage: remove <product-id>")
				continue
			}
			basket.Remove(ctx, args[0])

		case "qty":
			if len(args) != 2 {
				fmt.Println("usage: qty <product-id> <n>")
				continue
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("not a number:", args[1])
				continue
			}
			basket.SetQuantity(ctx, args[0], n)

		case "clear":
			basket.Clear(ctx)

		case "checkout":
			checkout(ctx, scanner, ledger)

		case "orders":
			for i, o := range ledger.List() {
				fmt.Printf("  [%d] %s %-10s %8d SYP  %s\n",
					i, o.Number, o.Status, o.Total, o.PlacedAt.Format("2006-01-02 15:04"))
			}

		case "status":
			if len(args) != 2 {
				fmt.Println("usage: status <index> <pending|waiting|onway|cancelled>")
				continue
			}
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Println("not a number:", args[0])
				continue
			}
			if err := ledger.SetStatus(ctx, sess.Capability(), idx, order.Status(args[1])); err != nil {
				fmt.Println("error:", err)
			}

		case "invoice":
			if len(args) != 1 {
				fmt.Println("usage: invoice <order-number>")
				continue
			}
			o, ok := ledger.FindByNumber(args[0])
			if !ok {
				fmt.Println("no such order:", args[0])
				continue
			}
			fmt.Println(order.Invoice(o))
			fmt.Println("send via:", ledger.WhatsAppURL(o))

		case "login":
			login(ctx, scanner, sess, args)

		case "logout":
			sess.Logout(ctx)

		case "addproduct":
			name := prompt(scanner, "Name: ")
			price, _ := strconv.ParseInt(prompt(scanner, "Price: "), 10, 64)
			image := prompt(scanner, "Image: ")
			if _, err := overlay.AddProduct(ctx, sess.Capability(), name, price, image); err != nil {
				fmt.Println("error:", err)
			}

		case "quit", "exit":
			return

		default:
			fmt.Println("unknown command, try 'help'")
		}
	}
}

func checkout(ctx context.Context, scanner *bufio.Scanner, ledger *order.Ledger) {
	customer := order.Customer{
		Name:    prompt(scanner, "Name: "),
		Phone:   prompt(scanner, "Phone: "),
		Email:   prompt(scanner, "Email (optional): "),
		Address: prompt(scanner, "Address: "),
	}
	method := order.PaymentMethod(prompt(scanner, "Payment (cash/bank/mobile): "))

	o, err := ledger.PlaceOrder(ctx, customer, method)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order.Invoice(o))
}

func login(ctx context.Context, scanner *bufio.Scanner, sess *session.Session, args []string) {
	role := session.RoleCustomer
	if len(args) > 0 {
		role = session.Role(args[0])
	}

	var creds session.Credentials
	if role == session.RoleAdmin {
		creds.Username = prompt(scanner, "Username: ")
		creds.Password = prompt(scanner, "Password: ")
	}
	if err := sess.Login(ctx, role, creds); err != nil {
		fmt.Println("error:", err)
	}
}

func findProduct(overlay *catalog.Overlay, id string) (catalog.Product, bool) {
	for _, p := range overlay.All() {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func printHelp() {
	fmt.Print(`  products                 list the catalog
  add <id> [qty]           add a product to the cart
  cart                     show the cart
  remove <id>              remove a cart line
  qty <id> <n>             change a line's quantity (0 removes)
  clear                    empty the cart
  checkout                 place an order from the cart
  orders                   list placed orders (newest first)
  status <i> <status>      admin: update an order's status
  invoice <order-number>   print an order's invoice
  login [customer|admin]   switch role
  logout                   back to customer
  addproduct               admin: add a catalog product
  quit
`)
}
