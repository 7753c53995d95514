package database

// PL/pgSQL sources for the stored routines and triggers that own the
// business invariants. The Go services only call these; stock
// sufficiency, subtotal and sale total are never computed client-side.

const procInsertarProducto = `
CREATE OR REPLACE PROCEDURE inventario.sp_insertar_producto(
    p_nombre varchar, p_marca varchar, p_stock integer, p_precio numeric)
LANGUAGE plpgsql AS $$
BEGIN
    INSERT INTO inventario.productos (nombre, marca, stock, precio)
    VALUES (p_nombre, p_marca, p_stock, p_precio);
END;
$$;
`

const procActualizarProducto = `
CREATE OR REPLACE PROCEDURE inventario.sp_actualizar_producto(
    p_id integer, p_nombre varchar, p_marca varchar, p_stock integer, p_precio numeric)
LANGUAGE plpgsql AS $$
BEGIN
    UPDATE inventario.productos
    SET nombre = p_nombre, marca = p_marca, stock = p_stock, precio = p_precio
    WHERE id_producto = p_id;

    IF NOT FOUND THEN
        RAISE EXCEPTION 'el producto % no existe', p_id;
    END IF;
END;
$$;
`

const procEliminarProducto = `
CREATE OR REPLACE PROCEDURE inventario.sp_eliminar_producto(p_id integer)
LANGUAGE plpgsql AS $$
BEGIN
    DELETE FROM inventario.productos WHERE id_producto = p_id;

    IF NOT FOUND THEN
        RAISE EXCEPTION 'el producto % no existe', p_id;
    END IF;
END;
$$;
`

const funcInsertarVenta = `
CREATE OR REPLACE FUNCTION inventario.sp_insertar_venta(p_fecha date)
RETURNS integer
LANGUAGE plpgsql AS $$
DECLARE
    v_id integer;
BEGIN
    INSERT INTO inventario.ventas (fecha, total)
    VALUES (p_fecha, 0)
    RETURNING id_venta INTO v_id;

    RETURN v_id;
END;
$$;
`

const procInsertarDetalleVenta = `
CREATE OR REPLACE PROCEDURE inventario.sp_insertar_detalle_venta(
    p_id_venta integer, p_id_producto integer, p_cantidad integer)
LANGUAGE plpgsql AS $$
BEGIN
    -- Price resolution, stock validation and subtotal are handled by
    -- the detalle_venta triggers.
    INSERT INTO inventario.detalle_venta (id_venta, id_producto, cantidad)
    VALUES (p_id_venta, p_id_producto, p_cantidad);
END;
$$;
`

const funcDetalleVentaBefore = `
CREATE OR REPLACE FUNCTION inventario.trg_detalle_venta_before()
RETURNS trigger
LANGUAGE plpgsql AS $$
DECLARE
    v_stock  integer;
    v_precio numeric(12,2);
BEGIN
    SELECT stock, precio INTO v_stock, v_precio
    FROM inventario.productos
    WHERE id_producto = NEW.id_producto
    FOR UPDATE;

    IF NOT FOUND THEN
        RAISE EXCEPTION 'el producto % no existe', NEW.id_producto;
    END IF;

    IF NEW.cantidad > v_stock THEN
        RAISE EXCEPTION 'stock insuficiente para el producto % (disponible: %, solicitado: %)',
            NEW.id_producto, v_stock, NEW.cantidad;
    END IF;

    NEW.subtotal := NEW.cantidad * v_precio;

    UPDATE inventario.productos
    SET stock = stock - NEW.cantidad
    WHERE id_producto = NEW.id_producto;

    RETURN NEW;
END;
$$;
`

const funcDetalleVentaAfter = `
CREATE OR REPLACE FUNCTION inventario.trg_detalle_venta_after()
RETURNS trigger
LANGUAGE plpgsql AS $$
BEGIN
    UPDATE inventario.ventas
    SET total = total + NEW.subtotal
    WHERE id_venta = NEW.id_venta;

    RETURN NEW;
END;
$$;
`

const triggerDetalleVentaBefore = `
DROP TRIGGER IF EXISTS detalle_venta_before_insert ON inventario.detalle_venta;
CREATE TRIGGER detalle_venta_before_insert
    BEFORE INSERT ON inventario.detalle_venta
    FOR EACH ROW
    EXECUTE FUNCTION inventario.trg_detalle_venta_before();
`

const triggerDetalleVentaAfter = `
DROP TRIGGER IF EXISTS detalle_venta_after_insert ON inventario.detalle_venta;
CREATE TRIGGER detalle_venta_after_insert
    AFTER INSERT ON inventario.detalle_venta
    FOR EACH ROW
    EXECUTE FUNCTION inventario.trg_detalle_venta_after();
`
