// Package zone classifies a seller/buyer pair into a ShippingZone and maps the zone
// to the DeliveryTier that decides how many hubs a shipment passes through.
//
// The package includes:
//   - ShippingZone and DeliveryTier enums with wire codes
//   - RegionTable: the static keyword table (metro, central region, island groups)
//   - Classifier: the total classification function over free-text addresses
package zone
